// Package strength scores password composition.
//
// The score is a coarse 0..5: one point each for length thresholds 8, 12 and
// 16, one for using three character classes and one more for all four. Labels
// run Very Weak to Strong. The entropy estimate assumes uniform random
// selection from the alphabet implied by the classes present, so it is an
// upper bound for human-chosen passwords.
package strength
