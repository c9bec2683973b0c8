package generator

import "strings"

// words is the built-in passphrase wordlist: 256 short, common, unambiguous
// English words, so each word contributes exactly 8 bits of entropy.
var words = strings.Fields(`
acid acorn actor adapt admit adopt agree ahead aisle alarm album alert alien
alley amber amuse angle ankle apple april apron arena argue armor arrow asset
atlas attic audio august avoid awake award badge bagel baker banjo barge basil
beach beard beast began berry birch bison blade blank blaze blend bloom board
bonus booth bound brave bread brick bride brook broom brush buddy bugle bunch
burst cabin cable cactus camel candy canoe cargo carol carve cedar cello chalk
charm chess chief chili choir chord cider cigar civic claim clash clasp clerk
cliff climb cloak clock cloud clover coast cobra cocoa comet coral couch cough
count court cover crack craft crane crate creek crisp crowd crown cruise crumb
cycle daisy dance delta denim depot derby diary digit diner dodge donor dough
dozen draft drama dream drift drill drum dusk eagle early earth easel ebony
echo edge elbow elder elm ember empty enjoy enter envy equal erupt essay evoke
exact exile fable fancy fang fern ferry fever fiber field fifty finch flame
flask fleet flint flock flour flute foam forge fossil found frame fresh frost
fruit gadget gala galaxy garlic gaze gecko gentle ghost ginger given glare
glide globe gloss glove gourd grain grape grasp gravel green grill grove guard
guest guide gulf habit handle happy harbor hatch hazel heron hinge holly honey
hotel hound humble hurdle iceberg idle igloo image index inlet iris island
ivory jacket jaguar jelly jewel jolly judge juice jumbo jungle kayak kettle
kiosk kitten ladle lagoon lance lantern lapel latch laurel lava level
`)
