package schema

// German returns the German phoneme schema.
func German() (*Schema, error) {
	return New(Definition{
		Name: "de",
		Vowels: []string{
			"a", "aː", "e", "eː", "ɛ", "ɛː", "i", "iː", "o", "oː", "ɔ",
			"u", "uː", "y", "yː", "ø", "øː", "œ", "ə", "ɐ",
			"aɪ̯", "aʊ̯", "ɔʏ̯",
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
			"ʒ": {"voiced": true, "place": "post-alveolar", "manner": "fricative"},
			"ç": {"voiced": false, "place": "palatal", "manner": "fricative"},
			"x": {"voiced": false, "place": "velar", "manner": "fricative"},
			"h": {"voiced": false, "place": "glottal", "manner": "fricative"},
			"m": {"voiced": true, "labial": true, "manner": "nasal"},
			"n": {"voiced": true, "place": "alveolar", "manner": "nasal"},
			"ŋ": {"voiced": true, "place": "velar", "manner": "nasal"},
			"l": {"voiced": true, "place": "alveolar", "manner": "lateral_approximant"},
			"r": {"voiced": true, "place": "alveolar", "manner": "trill"},
			"ʀ": {"voiced": true, "place": "uvular", "manner": "trill"},
			"j": {"voiced": true, "place": "palatal", "manner": "approximant"},
			"ts": {"voiced": false, "place": "alveolar", "manner": "affricate"},
			"tʃ": {"voiced": false, "place": "post-alveolar", "manner": "affricate"},
			"dʒ": {"voiced": true, "place": "post-alveolar", "manner": "affricate"},
			// Vowels.
			"iː": {"high": true, "front": true, "round": false, "long": true},
			"yː": {"high": true, "front": true, "round": true, "long": true},
			"uː": {"high": true, "back": true, "round": true, "long": true},
			"eː": {"mid-high": true, "front": true, "round": false, "long": true},
			"øː": {"mid-high": true, "front": true, "round": true, "long": true},
			"oː": {"mid-high": true, "back": true, "round": true, "long": true},
			"ɛː": {"mid-low": true, "front": true, "round": false, "long": true},
			"aː": {"low": true, "central": true, "round": false, "long": true},
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
			"ə": {"mid": true, "central": true, "round": false},
			"ɐ": {"low": true, "central": true, "round": false},
			// Diphthongs.
			"aɪ̯": {"diphthong": true, "start": "a", "end": "i"},
			"aʊ̯": {"diphthong": true, "start": "a", "end": "u"},
			"ɔʏ̯": {"diphthong": true, "start": "ɔ", "end": "y"},
		},
		Columns: map[FeatureType][]string{
			Consonant: {
				"voiced",
				"labial", "dental", "alveolar", "post-alveolar", "palatal", "velar", "glottal", "uvular",
				"plosive", "fricative", "nasal", "lateral_approximant", "trill", "approximant", "affricate",
			},
			Vowel: {
				"high", "mid-high", "mid", "mid-low", "low",
				"front", "central", "back",
				"round", "long", "diphthong", "start", "end",
			},
		},
	})
}
