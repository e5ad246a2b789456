package models

import "time"

// Document types.
const (
	DocumentLease   = "LEASE"
	DocumentNotice  = "NOTICE"
	DocumentReceipt = "RECEIPT"
	DocumentOther   = "OTHER"
)

// Document is an uploaded file (lease, notice, receipt) attached to a tenant
// and/or property. The file itself lives in Cloudinary; URL and PublicID point at it.
type Document struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Type       string            `json:"type"`
	URL        string            `json:"url"`
	PublicID   string            `json:"-"` // cloudinary asset identifier, used for deletion
	TenantID   *string           `json:"tenantId"`
	PropertyID *string           `json:"propertyId"`
	Tenant     *DocumentTenant   `json:"tenant,omitempty"`
	Property   *DocumentProperty `json:"property,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

type DocumentTenant struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type DocumentProperty struct {
	Title string `json:"title"`
}

func ValidDocumentType(s string) bool {
	switch s {
	case DocumentLease, DocumentNotice, DocumentReceipt, DocumentOther:
		return true
	}
	return false
}
