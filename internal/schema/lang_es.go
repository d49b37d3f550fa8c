package schema

// Spanish returns the Spanish phoneme schema.
func Spanish() (*Schema, error) {
	return New(Definition{
		Name: "es",
		Vowels: []string{
			"a", "e", "i", "o", "u",
			"ai", "au", "ei", "eu", "oi", "ou",
		},
		Phonemes: map[string]Features{
			// Consonants.
			"p": {"voiced": false, "labial": true, "manner": "plosive"},
			"b": {"voiced": true, "labial": true, "manner": "plosive"},
			"t": {"voiced": false, "place": "dental", "manner": "plosive"},
			"d": {"voiced": true, "place": "dental", "manner": "plosive"},
			"k": {"voiced": false, "place": "velar", "manner": "plosive"},
			"g": {"voiced": true, "place": "velar", "manner": "plosive"},
			"f": {"voiced": false, "labial": true, "dental": true, "manner": "fricative"},
			"θ": {"voiced": false, "place": "dental", "manner": "fricative"},
			"s": {"voiced": false, "place": "alveolar", "manner": "fricative"},
			"x": {"voiced": false, "place": "velar", "manner": "fricative"},
			"m": {"voiced": true, "labial": true, "manner": "nasal"},
			"n": {"voiced": true, "place": "alveolar", "manner": "nasal"},
			"ɲ": {"voiced": true, "place": "palatal", "manner": "nasal"},
			"l": {"voiced": true, "place": "alveolar", "manner": "lateral_approximant"},
			"ʎ": {"voiced": true, "place": "palatal", "manner": "lateral_approximant"},
			"r": {"voiced": true, "place": "alveolar", "manner": "tap"},
			"ɾ": {"voiced": true, "place": "alveolar", "manner": "trill"},
			"j": {"voiced": true, "place": "palatal", "manner": "approximant"},
			"w": {"voiced": true, "labial": true, "place": "velar", "manner": "approximant"},
			"tʃ": {"voiced": false, "place": "post-alveolar", "manner": "affricate"},
			// Vowels.
			"i": {"high": true, "front": true, "round": false},
			"u": {"high": true, "back": true, "round": true},
			"e": {"mid": true, "front": true, "round": false},
			"o": {"mid": true, "back": true, "round": true},
			"a": {"low": true, "central": true, "round": false},
			// Diphthongs.
			"ai": {"diphthong": true, "start": "a", "end": "i"},
			"au": {"diphthong": true, "start": "a", "end": "u"},
			"ei": {"diphthong": true, "start": "e", "end": "i"},
			"eu": {"diphthong": true, "start": "e", "end": "u"},
			"oi": {"diphthong": true, "start": "o", "end": "i"},
			"ou": {"diphthong": true, "start": "o", "end": "u"},
		},
		Columns: map[FeatureType][]string{
			Consonant: {
				"voiced",
				"labial", "dental", "alveolar", "post-alveolar", "palatal", "velar",
				"plosive", "fricative", "nasal", "lateral_approximant", "tap", "trill", "approximant", "affricate",
			},
			Vowel: {
				"high", "mid", "low", "front", "central", "back", "round",
				"diphthong", "start", "end",
			},
		},
	})
}
