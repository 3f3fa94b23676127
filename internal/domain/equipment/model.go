package equipment

import (
	"strings"
	"time"

	"kontora/internal/core/id"
)

// Equipment is the tracked-item aggregate. Status transitions are
// unrestricted; changing status preserves the prior value in previousStatus
// and stamps the audit fields.
type Equipment struct {
	uid                id.ID
	name               Name
	status             Status
	previousStatus     *Status
	transportUID       *id.ID
	warehouse          *string
	issuedToUID        *id.ID
	purchaseInvoiceUID *id.ID
	supplierUID        *id.ID
	issueDocUID        *id.ID
	mountingDate       *time.Time
	shipmentInvoiceUID *id.ID
	customerUID        *id.ID
	skziFrom           *time.Time
	skziTo             *time.Time
	creatorUID         *id.ID
	createdAt          time.Time
	updatedAt          *time.Time
	updatedByUID       *id.ID
}

// NewEquipment constructs an equipment item with a fresh uid and
// createdAt = now.
func NewEquipment(name Name, status Status, creatorUID *id.ID) *Equipment {
	return &Equipment{
		uid:        id.New(),
		name:       name,
		status:     status,
		creatorUID: creatorUID,
		createdAt:  time.Now().UTC(),
	}
}

// State is the flat persisted form of an Equipment item.
type State struct {
	UID                id.ID
	Name               string
	Status             Status
	PreviousStatus     *Status
	TransportUID       *id.ID
	Warehouse          *string
	IssuedToUID        *id.ID
	PurchaseInvoiceUID *id.ID
	SupplierUID        *id.ID
	IssueDocUID        *id.ID
	MountingDate       *time.Time
	ShipmentInvoiceUID *id.ID
	CustomerUID        *id.ID
	SkziFrom           *time.Time
	SkziTo             *time.Time
	CreatorUID         *id.ID
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	UpdatedByUID       *id.ID
}

// Restore rehydrates an Equipment item from its persisted state.
func Restore(s State) *Equipment {
	return &Equipment{
		uid:                s.UID,
		name:               Name{value: s.Name},
		status:             s.Status,
		previousStatus:     s.PreviousStatus,
		transportUID:       s.TransportUID,
		warehouse:          s.Warehouse,
		issuedToUID:        s.IssuedToUID,
		purchaseInvoiceUID: s.PurchaseInvoiceUID,
		supplierUID:        s.SupplierUID,
		issueDocUID:        s.IssueDocUID,
		mountingDate:       s.MountingDate,
		shipmentInvoiceUID: s.ShipmentInvoiceUID,
		customerUID:        s.CustomerUID,
		skziFrom:           s.SkziFrom,
		skziTo:             s.SkziTo,
		creatorUID:         s.CreatorUID,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		updatedByUID:       s.UpdatedByUID,
	}
}

func (e *Equipment) UID() id.ID                 { return e.uid }
func (e *Equipment) Name() Name                 { return e.name }
func (e *Equipment) Status() Status             { return e.status }
func (e *Equipment) PreviousStatus() *Status    { return e.previousStatus }
func (e *Equipment) TransportUID() *id.ID       { return e.transportUID }
func (e *Equipment) Warehouse() *string         { return e.warehouse }
func (e *Equipment) IssuedToUID() *id.ID        { return e.issuedToUID }
func (e *Equipment) PurchaseInvoiceUID() *id.ID { return e.purchaseInvoiceUID }
func (e *Equipment) SupplierUID() *id.ID        { return e.supplierUID }
func (e *Equipment) IssueDocUID() *id.ID        { return e.issueDocUID }
func (e *Equipment) MountingDate() *time.Time   { return e.mountingDate }
func (e *Equipment) ShipmentInvoiceUID() *id.ID { return e.shipmentInvoiceUID }
func (e *Equipment) CustomerUID() *id.ID        { return e.customerUID }
func (e *Equipment) SkziFrom() *time.Time       { return e.skziFrom }
func (e *Equipment) SkziTo() *time.Time         { return e.skziTo }
func (e *Equipment) CreatorUID() *id.ID         { return e.creatorUID }
func (e *Equipment) CreatedAt() time.Time       { return e.createdAt }
func (e *Equipment) UpdatedAt() *time.Time      { return e.updatedAt }
func (e *Equipment) UpdatedByUID() *id.ID       { return e.updatedByUID }

// ChangeStatus preserves the current status in previousStatus, applies the
// new one and stamps the audit fields.
func (e *Equipment) ChangeStatus(status Status, authorUID *id.ID) {
	prior := e.status
	e.previousStatus = &prior
	e.status = status
	e.Touch(authorUID)
}

// SetTransportUID links the item to a transport unit.
func (e *Equipment) SetTransportUID(uid *id.ID) { e.transportUID = uid }

// SetWarehouse replaces the warehouse dictionary name; blank maps to nil.
func (e *Equipment) SetWarehouse(warehouse *string) {
	if warehouse == nil {
		e.warehouse = nil
		return
	}
	v := strings.TrimSpace(*warehouse)
	if v == "" {
		e.warehouse = nil
		return
	}
	e.warehouse = &v
}

// SetIssuedToUID links the item to the person it is issued to.
func (e *Equipment) SetIssuedToUID(uid *id.ID) { e.issuedToUID = uid }

// SetPurchaseInvoiceUID links the purchase invoice document.
func (e *Equipment) SetPurchaseInvoiceUID(uid *id.ID) { e.purchaseInvoiceUID = uid }

// SetSupplierUID links the supplier legal entity.
func (e *Equipment) SetSupplierUID(uid *id.ID) { e.supplierUID = uid }

// SetIssueDocUID links the issue document.
func (e *Equipment) SetIssueDocUID(uid *id.ID) { e.issueDocUID = uid }

// SetMountingDate records when the item was mounted.
func (e *Equipment) SetMountingDate(date *time.Time) { e.mountingDate = date }

// SetShipmentInvoiceUID links the shipment invoice document.
func (e *Equipment) SetShipmentInvoiceUID(uid *id.ID) { e.shipmentInvoiceUID = uid }

// SetCustomerUID links the customer legal entity.
func (e *Equipment) SetCustomerUID(uid *id.ID) { e.customerUID = uid }

// SetSkziFrom records the start of the crypto-module validity window.
func (e *Equipment) SetSkziFrom(date *time.Time) { e.skziFrom = date }

// SetSkziTo records the end of the crypto-module validity window.
func (e *Equipment) SetSkziTo(date *time.Time) { e.skziTo = date }

// Touch stamps updatedAt and the acting user.
func (e *Equipment) Touch(updaterUID *id.ID) {
	now := time.Now().UTC()
	e.updatedAt = &now
	e.updatedByUID = updaterUID
}
