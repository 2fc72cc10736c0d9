package validation

import "time"

// Option sets for selection fields.
var (
	Countries          = []string{"Australia", "New Zealand", "United Kingdom", "United States", "Other"}
	ContactPreferences = []string{"email", "phone"}
	ShippingMethods    = []string{"standard", "express"}
)

// ContactRules returns the rule set for the contact form.
func ContactRules() RuleSet {
	return RuleSet{
		"name":              NameRule("Name"),
		"email":             EmailRule(),
		"phone":             PhoneRule("Phone", 7, 15),
		"age":               AgeRule(),
		"contactPreference": SelectionRule("contact preference", ContactPreferences),
		"country":           SelectionRule("country", Countries),
		"message":           MessageRule(),
	}
}

// CheckoutRules returns the rule set for the checkout form. The expiry rule
// compares against the injected clock.
func CheckoutRules(now func() time.Time) RuleSet {
	if now == nil {
		now = time.Now
	}
	return RuleSet{
		"name":           NameRule("Name"),
		"email":          EmailRule(),
		"mobile":         PhoneRule("Mobile", 8, 15),
		"address":        RequiredRule("Address"),
		"city":           RequiredRule("City"),
		"state":          RequiredRule("State"),
		"postcode":       PostcodeRule(),
		"cardNumber":     CardNumberRule(),
		"expiryDate":     ExpiryRule(now),
		"cvv":            CVVRule(),
		"cardName":       NameRule("Name on card"),
		"shippingMethod": SelectionRule("shipping method", ShippingMethods),
	}
}
