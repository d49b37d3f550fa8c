package schema

// Danish returns the Danish phoneme schema.
func Danish() (*Schema, error) {
	return New(Definition{
		Name: "da",
		Vowels: []string{
			"a", "aː", "ɑ", "ɑː", "e", "eː", "ɛ", "ɛː", "i", "iː",
			"o", "oː", "ɔ", "ɔː", "u", "uː", "y", "yː", "ø", "øː",
			"œ", "œː", "ə",
			"ai", "oi", "ui", "au", "eu", "iu",
		},
		Phonemes: map[string]Features{
			// Consonants.
			"p": {"voiced": false, "labial": true, "manner": "plosive"},
			"b": {"voiced": true, "labial": true, "manner": "plosive"},
			"t": {"voiced": false, "place": "alveolar", "manner": "plosive"},
			"d": {"voiced": true, "place": "alveolar", "manner": "plosive"},
			"k": {"voiced": false, "place": "velar", "manner": "plosive"},
			"g": {"voiced": true, "place": "velar", "manner": "plosive"},
			"f": {"voiced": false, "labial": true, "dental": true, "manner": "fricative"},
			"v": {"voiced": true, "labial": true, "dental": true, "manner": "fricative"},
			"s": {"voiced": false, "place": "alveolar", "manner": "fricative"},
			"z": {"voiced": true, "place": "alveolar", "manner": "fricative"},
			"ʃ": {"voiced": false, "place": "post-alveolar", "manner": "fricative"},
			"ç": {"voiced": false, "place": "palatal", "manner": "fricative"},
			"x": {"voiced": false, "place": "velar", "manner": "fricative"},
			"h": {"voiced": false, "place": "glottal", "manner": "fricative"},
			"m": {"voiced": true, "labial": true, "manner": "nasal"},
			"n": {"voiced": true, "place": "alveolar", "manner": "nasal"},
			"ŋ": {"voiced": true, "place": "velar", "manner": "nasal"},
			"l": {"voiced": true, "place": "alveolar", "manner": "lateral_approximant"},
			"r": {"voiced": true, "place": "uvular", "manner": "trill"},
			"j": {"voiced": true, "place": "palatal", "manner": "approximant"},
			"w": {"voiced": true, "labial": true, "place": "velar", "manner": "approximant"},
			// Vowels.
			"iː": {"high": true, "front": true, "round": false, "long": true},
			"yː": {"high": true, "front": true, "round": true, "long": true},
			"uː": {"high": true, "back": true, "round": true, "long": true},
			"eː": {"mid-high": true, "front": true, "round": false, "long": true},
			"øː": {"mid-high": true, "front": true, "round": true, "long": true},
			"oː": {"mid-high": true, "back": true, "round": true, "long": true},
			"ɛː": {"mid-low": true, "front": true, "round": false, "long": true},
			"œː": {"mid-low": true, "front": true, "round": true, "long": true},
			"ɔː": {"mid-low": true, "back": true, "round": true, "long": true},
			"ɑː": {"low": true, "back": true, "round": false, "long": true},
			"i": {"high": true, "front": true, "round": false, "long": false},
			"y": {"high": true, "front": true, "round": true, "long": false},
			"u": {"high": true, "back": true, "round": true, "long": false},
			"e": {"mid-high": true, "front": true, "round": false, "long": false},
			"ø": {"mid-high": true, "front": true, "round": true, "long": false},
			"o": {"mid-high": true, "back": true, "round": true, "long": false},
			"ɛ": {"mid-low": true, "front": true, "round": false, "long": false},
			"œ": {"mid-low": true, "front": true, "round": true, "long": false},
			"ɔ": {"mid-low": true, "back": true, "round": true, "long": false},
			"a": {"low": true, "front": true, "round": false, "long": false},
			"aː": {"low": true, "front": true, "round": false, "long": true},
			"ɑ": {"low": true, "back": true, "round": false, "long": false},
			"ə": {"mid": true, "central": true, "round": false},
			// Diphthongs.
			"ai": {"diphthong": true, "start": "a", "end": "i"},
			"oi": {"diphthong": true, "start": "o", "end": "i"},
			"ui": {"diphthong": true, "start": "u", "end": "i"},
			"au": {"diphthong": true, "start": "a", "end": "u"},
			"eu": {"diphthong": true, "start": "e", "end": "u"},
			"iu": {"diphthong": true, "start": "i", "end": "u"},
		},
		Columns: map[FeatureType][]string{
			Consonant: {
				"voiced",
				"labial", "dental", "alveolar", "post-alveolar", "palatal", "velar", "glottal", "uvular",
				"plosive", "fricative", "nasal", "lateral_approximant", "trill", "approximant",
			},
			Vowel: {
				"high", "mid-high", "mid", "mid-low", "low",
				"front", "central", "back",
				"round", "long", "diphthong", "start", "end",
			},
		},
	})
}
