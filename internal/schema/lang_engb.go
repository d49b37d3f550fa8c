package schema

// EnglishGB returns the British English phoneme schema.
func EnglishGB() (*Schema, error) {
	return New(Definition{
		Name: "en-gb",
		Vowels: []string{
			"e", "u", "æ", "ɑ", "ɒ", "ɔ", "ə", "ɜ", "ɪ", "i", "ʊ", "ʌ", "ɐ",
			"iː", "uː", "ɜː", "ɔː", "ɑː",
			"eɪ", "aɪ", "ɔɪ", "aʊ", "əʊ", "eə", "ɪə", "iə", "ʊə",
		},
		Phonemes: map[string]Features{
			// Consonants.
			"p": {"voiced": false, "labial": true, "manner": "plosive"},
			"b": {"voiced": true, "labial": true, "manner": "plosive"},
			"f": {"voiced": false, "labial": true, "dental": true, "manner": "fricative"},
			"v": {"voiced": true, "labial": true, "dental": true, "manner": "fricative"},
			"t": {"voiced": false, "place": "alveolar", "manner": "plosive"},
			"θ": {"voiced": false, "place": "alveolar", "dental": true, "manner": "fricative"},
			"ð": {"voiced": true, "place": "alveolar", "dental": true, "manner": "fricative"},
			"d": {"voiced": true, "place": "alveolar", "manner": "plosive"},
			"k": {"voiced": false, "place": "velar", "manner": "plosive"},
			"g": {"voiced": true, "place": "velar", "manner": "plosive"},
			"s": {"voiced": false, "place": "alveolar", "manner": "fricative"},
			"z": {"voiced": true, "place": "alveolar", "manner": "fricative"},
			"ʃ": {"voiced": false, "place": "post-alveolar", "manner": "fricative"},
			"ʒ": {"voiced": true, "place": "post-alveolar", "manner": "fricative"},
			"m": {"voiced": true, "labial": true, "manner": "nasal"},
			"n": {"voiced": true, "place": "alveolar", "manner": "nasal"},
			"ŋ": {"voiced": true, "place": "velar", "manner": "nasal"},
			"l": {"voiced": true, "place": "alveolar", "manner": "lateral_approximant"},
			// No distinction between 'l' and 'dark l'.
			"ɫ": {"voiced": true, "place": "alveolar", "manner": "lateral_approximant"},
			"r": {"voiced": true, "place": "post-alveolar", "manner": "approximant"},
			"w": {"voiced": true, "labial": true, "place": "velar", "manner": "approximant"},
			"j": {"voiced": true, "place": "palatal", "manner": "approximant"},
			"tʃ": {"voiced": false, "place": "post-alveolar", "manner": "affricate"},
			"dʒ": {"voiced": true, "place": "post-alveolar", "manner": "affricate"},
			// Vowels.
			"ɪ": {"high": true, "front": true, "round": false, "tense": false, "long": false},
			"e": {"mid": true, "front": true, "round": false, "tense": false, "long": false},
			"æ": {"low": true, "front": true, "round": false, "tense": false, "long": false},
			"ʌ": {"mid": true, "back": true, "round": false, "tense": false, "long": false},
			"ɒ": {"low": true, "back": true, "round": true, "tense": false, "long": false},
			"ɐ": {"low": true, "central": true, "round": false, "tense": false, "long": false},
			"ʊ": {"high": true, "back": true, "round": true, "tense": false, "long": false},
			"ə": {"mid": true, "central": true, "round": false, "tense": false, "long": false},
			"i": {"high": true, "front": true, "round": false, "tense": true, "long": true},
			"u": {"high": true, "back": true, "round": true, "tense": true, "long": false},
			"ɜ": {"mid": true, "central": true, "round": false, "tense": false, "long": false},
			"ɔ": {"mid": true, "back": true, "round": true, "tense": false, "long": false},
			"ɑ": {"low": true, "back": true, "round": false, "tense": false, "long": false},
			"iː": {"high": true, "front": true, "round": false, "tense": true, "long": true},
			"uː": {"high": true, "back": true, "round": true, "tense": true, "long": true},
			"ɜː": {"mid": true, "central": true, "round": false, "tense": false, "long": true},
			"ɔː": {"mid": true, "back": true, "round": true, "tense": false, "long": true},
			"ɑː": {"low": true, "back": true, "round": false, "tense": false, "long": true},
			// Diphthongs.
			"eɪ": {"mid": true, "high": true, "front": true, "long": true},
			"aɪ": {"high": true, "low": true, "back": true, "long": true},
			"ɔɪ": {"high": true, "mid": true, "back": true, "long": true},
			"aʊ": {"high": true, "low": true, "back": true, "long": true, "round": true},
			"əʊ": {"high": true, "mid": true, "back": true, "long": true, "round": true},
			"eə": {"mid": true, "front": true, "long": true},
			"ɪə": {"high": true, "front": true, "long": true},
			"iə": {"high": true, "front": true, "long": true},
			"ʊə": {"high": true, "back": true, "long": true, "round": true},
		},
		Columns: map[FeatureType][]string{
			Consonant: {
				"voiced",
				// Place.
				"labial", "dental", "alveolar", "post-alveolar", "palatal", "velar", "glottal",
				// Manner.
				"plosive", "fricative", "affricate", "nasal", "approximant", "lateral_approximant",
			},
			Vowel: {
				"tense", "long", "diphthong",
				// Height.
				"high", "mid", "low",
				// Backness.
				"front", "central", "back",
				"round",
			},
		},
	})
}
