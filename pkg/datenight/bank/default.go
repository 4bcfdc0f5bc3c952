package bank

var defaultCategories = []Category{
	{
		Name:  "romantic",
		Color: "#FF6B6B",
		Questions: []string{
			"What was your first impression of me?",
			"What's your favorite memory of us together?",
			"Where do you see us in five years?",
			"What makes you feel most loved?",
			"What's your ideal date night?",
		},
	},
	{
		Name:  "deep",
		Color: "#4ECDC4",
		Questions: []string{
			"What's your biggest fear?",
			"What's a dream you've never told anyone?",
			"How has your childhood shaped you?",
			"What's the most important life lesson you've learned?",
			"What do you want to be remembered for?",
		},
	},
	{
		Name:  "fun",
		Color: "#FFD93D",
		Questions: []string{
			"If you could have any superpower, what would it be?",
			"What's the most spontaneous thing you've done?",
			"If we could teleport anywhere right now, where would we go?",
			"What's the silliest thing you've done for love?",
			"What's your perfect weekend?",
		},
	},
	{
		Name:  "future",
		Color: "#6C5CE7",
		Questions: []string{
			"What's your biggest goal right now?",
			"What adventure should we plan next?",
			"How do you want to grow together?",
			"What's on your bucket list?",
			"What new thing would you like us to try together?",
		},
	},
}

// Default returns the built-in bank.
func Default() *Bank {
	b, err := New(defaultCategories)
	if err != nil {
		panic("bank: invalid built-in categories: " + err.Error())
	}
	return b
}
