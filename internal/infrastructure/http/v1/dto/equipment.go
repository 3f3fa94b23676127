package dto

import (
	"time"

	"kontora/internal/core/apperror"
	"kontora/internal/domain/equipment"
)

// CreateEquipmentRequest for creating equipment items.
type CreateEquipmentRequest struct {
	Name      string  `json:"name" binding:"required"`
	Status    string  `json:"status" binding:"required"`
	Warehouse *string `json:"warehouse"`
}

// ChangeEquipmentStatusRequest for status transitions.
type ChangeEquipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateEquipmentRequest for updating the reference cluster. Nil leaves a
// field unchanged; dates use the YYYY-MM-DD form.
type UpdateEquipmentRequest struct {
	TransportUID       *string `json:"transportUid"`
	Warehouse          *string `json:"warehouse"`
	IssuedToUID        *string `json:"issuedToUid"`
	PurchaseInvoiceUID *string `json:"purchaseInvoiceUid"`
	SupplierUID        *string `json:"supplierUid"`
	IssueDocUID        *string `json:"issueDocUid"`
	MountingDate       *string `json:"mountingDate"`
	ShipmentInvoiceUID *string `json:"shipmentInvoiceUid"`
	CustomerUID        *string `json:"customerUid"`
	SkziFrom           *string `json:"skziFrom"`
	SkziTo             *string `json:"skziTo"`
}

// Dates parses the optional date fields.
func (r UpdateEquipmentRequest) Dates() (mountingDate, skziFrom, skziTo *time.Time, err error) {
	if mountingDate, err = parseOptionalDate(r.MountingDate, "mountingDate"); err != nil {
		return nil, nil, nil, err
	}
	if skziFrom, err = parseOptionalDate(r.SkziFrom, "skziFrom"); err != nil {
		return nil, nil, nil, err
	}
	if skziTo, err = parseOptionalDate(r.SkziTo, "skziTo"); err != nil {
		return nil, nil, nil, err
	}
	return mountingDate, skziFrom, skziTo, nil
}

func parseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseDate(*value)
	if err != nil {
		return nil, apperror.NewValidation("Invalid date format, expected YYYY-MM-DD").
			WithDetail("field", field).
			WithDetail("value", *value)
	}
	return &t, nil
}

// EquipmentResponse is the read projection of an equipment item.
type EquipmentResponse struct {
	UID                string  `json:"uid"`
	Name               string  `json:"name"`
	Status             string  `json:"status"`
	PreviousStatus     *string `json:"previousStatus,omitempty"`
	TransportUID       *string `json:"transportUid,omitempty"`
	Warehouse          *string `json:"warehouse,omitempty"`
	IssuedToUID        *string `json:"issuedToUid,omitempty"`
	PurchaseInvoiceUID *string `json:"purchaseInvoiceUid,omitempty"`
	SupplierUID        *string `json:"supplierUid,omitempty"`
	IssueDocUID        *string `json:"issueDocUid,omitempty"`
	MountingDate       *string `json:"mountingDate,omitempty"`
	ShipmentInvoiceUID *string `json:"shipmentInvoiceUid,omitempty"`
	CustomerUID        *string `json:"customerUid,omitempty"`
	SkziFrom           *string `json:"skziFrom,omitempty"`
	SkziTo             *string `json:"skziTo,omitempty"`
	CreatorUID         *string `json:"creatorUid,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          *string `json:"updatedAt,omitempty"`
	UpdatedByUID       *string `json:"updatedByUid,omitempty"`
}

// FromEquipment maps the aggregate to its read projection.
func FromEquipment(e *equipment.Equipment) EquipmentResponse {
	var prevStatus *string
	if e.PreviousStatus() != nil {
		v := e.PreviousStatus().String()
		prevStatus = &v
	}
	return EquipmentResponse{
		UID:                e.UID().String(),
		Name:               e.Name().Value(),
		Status:             e.Status().String(),
		PreviousStatus:     prevStatus,
		TransportUID:       UIDString(e.TransportUID()),
		Warehouse:          e.Warehouse(),
		IssuedToUID:        UIDString(e.IssuedToUID()),
		PurchaseInvoiceUID: UIDString(e.PurchaseInvoiceUID()),
		SupplierUID:        UIDString(e.SupplierUID()),
		IssueDocUID:        UIDString(e.IssueDocUID()),
		MountingDate:       FormatDatePtr(e.MountingDate()),
		ShipmentInvoiceUID: UIDString(e.ShipmentInvoiceUID()),
		CustomerUID:        UIDString(e.CustomerUID()),
		SkziFrom:           FormatDatePtr(e.SkziFrom()),
		SkziTo:             FormatDatePtr(e.SkziTo()),
		CreatorUID:         UIDString(e.CreatorUID()),
		CreatedAt:          FormatTimestamp(e.CreatedAt()),
		UpdatedAt:          FormatTimestampPtr(e.UpdatedAt()),
		UpdatedByUID:       UIDString(e.UpdatedByUID()),
	}
}

// FromEquipmentList maps a list of aggregates.
func FromEquipmentList(list []*equipment.Equipment) []EquipmentResponse {
	result := make([]EquipmentResponse, 0, len(list))
	for _, e := range list {
		result = append(result, FromEquipment(e))
	}
	return result
}
