package ecommerce

// magentoCustomerResponse is the customer payload returned by the
// Magento REST API.
type magentoCustomerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}

// magentoErrorResponse is the error envelope returned by the Magento
// REST API on non-2xx responses.
type magentoErrorResponse struct {
	Message string `json:"message"`
}
