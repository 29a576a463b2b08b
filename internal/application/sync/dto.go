package sync

// RemoteCustomer is the customer payload the e-commerce platform ships,
// either fetched from its API or embedded in a webhook.
type RemoteCustomer struct {
	// CustomerID is the platform-assigned customer id. "0" marks a
	// guest/anonymous checkout.
	CustomerID string
	FirstName  string
	LastName   string
	Email      string
}

// RemoteAddress is an address payload nested under a remote order or
// customer. Street may hold two lines separated by a line break.
type RemoteAddress struct {
	FirstName   string
	LastName    string
	Street      string
	City        string
	Postcode    string
	CountryCode string
	Region      string
	Telephone   string
}
