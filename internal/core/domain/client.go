package domain

// Client is a contracting company that owns parks. It is keyed by its
// normalized 14-digit CNPJ rather than a surrogate id.
type Client struct {
	CNPJ         string `json:"cnpj"`
	Name         string `json:"name"`
	ContactPhone string `json:"contactPhone"`
	Email        string `json:"email"`
}
