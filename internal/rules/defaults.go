package rules

// DefaultClassifier returns a classifier seeded with the four financial
// service desks and their standard keywords.
func DefaultClassifier() *Classifier {
	return NewClassifier(
		NewCategory("Trading", "buy", "sell", "stock", "trade", "order", "limit", "market"),
		NewCategory("Retirement", "ira", "401k", "roth", "rollover", "distribution", "beneficiary"),
		NewCategory("Service", "login", "password", "locked", "address", "profile", "check"),
		NewCategory("Tax", "1099", "tax", "form", "deduction", "withholding"),
	)
}
