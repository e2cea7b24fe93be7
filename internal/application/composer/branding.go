package composer

// RGB color used by renderers.
type RGB struct {
	R, G, B int
}

// Branding is the fixed presentation data of an invoice. It is built once at
// startup and passed by value; composition never reads global state.
type Branding struct {
	CompanyName    string
	Tagline        string
	Badge          string
	AddressLine    string
	ContactLine    string
	ThankYouLine   string
	BankName       string
	UPIHandle      string // optional; adds a payment QR code to the PDF
	CurrencySymbol string
	Locale         string
	TaxRateLabel   string
	PrimaryColor   RGB
	AccentColor    RGB
	FontFamily     string
	FontSize       float64
	PageSize       string // a4, letter, legal...
}

// DefaultBranding is the agency the desk was built for.
func DefaultBranding() Branding {
	return Branding{
		CompanyName:    "Ridhi Sidhi Tours & Travels",
		Tagline:        "Your Journey, Our Responsibility",
		Badge:          "TRAVEL AGENCY",
		AddressLine:    "123 Travel Street, Tourism City - 400001",
		ContactLine:    "Contact: +91-1234567890 | Email: info@ridhisidhitours.com",
		ThankYouLine:   "Thank you for choosing Ridhi Sidhi Tours & Travels!",
		BankName:       "XYZ Bank",
		CurrencySymbol: "Rs.",
		Locale:         "en-IN",
		TaxRateLabel:   "0%",
		PrimaryColor:   RGB{R: 69, G: 130, B: 181},
		AccentColor:    RGB{R: 252, G: 166, B: 0},
		FontFamily:     "helvetica",
		FontSize:       9,
		PageSize:       "a4",
	}
}
