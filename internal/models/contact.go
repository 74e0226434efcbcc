package models

// ContactCategory groups contacts in the address book.
type ContactCategory string

const (
	CategoryLead     ContactCategory = "lead"
	CategoryCustomer ContactCategory = "customer"
	CategoryPartner  ContactCategory = "partner"
	CategoryVendor   ContactCategory = "vendor"

	CategoryAll ContactCategory = "all"
)

type ContactStatus string

const (
	ContactActive   ContactStatus = "active"
	ContactInactive ContactStatus = "inactive"
	ContactProspect ContactStatus = "prospect"
)

// Contact represents a counterparty person.
type Contact struct {
	ID        string          `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Company   string          `json:"company"`
	Position  string          `json:"position"`
	Address   string          `json:"address"`
	Website   string          `json:"website"`
	Category  ContactCategory `json:"category"`
	Status    ContactStatus   `json:"status"`
	DateAdded Date            `json:"dateAdded"`
	Notes     string          `json:"notes"`
}

// FullName is "First Last".
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ContactInput is the contact form payload; nil means "not submitted".
type ContactInput struct {
	FirstName *string          `json:"firstName"`
	LastName  *string          `json:"lastName"`
	Email     *string          `json:"email"`
	Phone     *string          `json:"phone"`
	Company   *string          `json:"company"`
	Position  *string          `json:"position"`
	Address   *string          `json:"address"`
	Website   *string          `json:"website"`
	Category  *ContactCategory `json:"category"`
	Status    *ContactStatus   `json:"status"`
	DateAdded *string          `json:"dateAdded"`
	Notes     *string          `json:"notes"`
}

// ContactFilter narrows the contact list. Empty Category or CategoryAll matches all.
type ContactFilter struct {
	Category ContactCategory
	Search   string
}
