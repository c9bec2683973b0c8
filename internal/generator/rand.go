package generator

import (
	"crypto/rand"
	"errors"
)

// randIndex returns a uniform index in [0, n) from crypto/rand.
//
// It rejects bytes above the largest multiple of n to avoid modulo bias.
func randIndex(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("randIndex: empty range")
	}
	if n > 256 {
		return 0, errors.New("randIndex: range too large")
	}
	max := 256 - 256%n
	var b [1]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			return 0, err
		}
		if int(b[0]) < max {
			return int(b[0]) % n, nil
		}
	}
}

// randIndex16 is randIndex for ranges up to 65536, used for wordlists and
// for shuffling buffers longer than 256 bytes.
func randIndex16(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("randIndex16: empty range")
	}
	if n > 1<<16 {
		return 0, errors.New("randIndex16: range too large")
	}
	max := 1 << 16
	max -= max % n
	var b [2]byte
	for {
		if _, err := rand.Read(b[:]); err != nil {
			return 0, err
		}
		v := int(b[0])<<8 | int(b[1])
		if v < max {
			return v % n, nil
		}
	}
}

// shuffle permutes buf in place with a Fisher–Yates walk. It draws 16-bit
// indices so buffers longer than 256 bytes shuffle correctly.
func shuffle(buf []byte) error {
	for i := len(buf) - 1; i > 0; i-- {
		j, err := randIndex16(i + 1)
		if err != nil {
			return err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}
