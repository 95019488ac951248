package domain

// Park is one amusement-park installation belonging to a client. Back-reference
// to the owning client is kept as the CNPJ key only, never a live pointer.
type Park struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	State      string `json:"state"`
	ClientCNPJ string `json:"clientCnpj"`
}
