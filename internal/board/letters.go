package board

import "math/rand"

// English letter frequencies (percent) for words as they appear in a
// dictionary, A through Z.
var letterFrequencies = [26]float64{
	5.7,  // A
	6,    // B
	9.4,  // C
	6.1,  // D
	3.9,  // E
	4.1,  // F
	3.3,  // G
	3.7,  // H
	3.9,  // I
	1.1,  // J
	1,    // K
	3.1,  // L
	5.6,  // M
	2.2,  // N
	2.5,  // O
	7.7,  // P
	0.49, // Q
	6,    // R
	11,   // S
	5,    // T
	2.9,  // U
	1.5,  // V
	2.7,  // W
	0.05, // X
	0.36, // Y
	0.24, // Z
}

// letterSampler draws letters with dictionary-frequency weighting using a
// cumulative distribution over the table above.
type letterSampler struct {
	cumulative [26]float64
	total      float64
	rnd        *rand.Rand
}

func newLetterSampler(rnd *rand.Rand) *letterSampler {
	s := &letterSampler{rnd: rnd}
	sum := 0.0
	for i, f := range letterFrequencies {
		sum += f
		s.cumulative[i] = sum
	}
	s.total = sum
	return s
}

func (s *letterSampler) next() byte {
	r := s.rnd.Float64() * s.total
	for i, c := range s.cumulative {
		if r <= c {
			return byte('A' + i)
		}
	}
	return 'A'
}
