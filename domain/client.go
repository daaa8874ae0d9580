package domain

// Client is one row of the upstream clients table. The table is owned
// entirely by the upstream service; this system only reads it.
type Client struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Contact           string  `json:"contact"`
	TaxID             string  `json:"tax_id"`
	PaymentState      string  `json:"payment_state"`
	DeclarationStatus string  `json:"declaration_status"`
	PaymentAmount     float64 `json:"payment_amount"`
	CreatedAt         string  `json:"created_at"`
	DueDate           *string `json:"due_date"`
	Notes             *string `json:"notes"`
}

// ClientColumns is the fixed projection read from the clients table.
const ClientColumns = "id,name,contact,tax_id,payment_state,declaration_status,payment_amount,created_at,due_date,notes"
