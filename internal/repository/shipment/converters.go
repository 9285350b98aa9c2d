package shipment

import "shipment-service/internal/entities"

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}
	return &entities.Shipment{
		ID:          s.ID,
		OrderID:     s.OrderID,
		Carrier:     entities.Carrier(s.Carrier),
		Status:      entities.ShipmentStatus(s.Status),
		TrackingNo:  s.TrackingNo,
		ShippedAt:   s.ShippedAt,
		DeliveredAt: s.DeliveredAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ToDomainList(models []ShipmentDB) []entities.Shipment {
	shipments := make([]entities.Shipment, 0, len(models))
	for i := range models {
		shipments = append(shipments, *ToDomain(&models[i]))
	}
	return shipments
}

func FromDomainModify(s *entities.ShipmentModify) *ShipmentModifyDB {
	if s == nil {
		return nil
	}
	modifyDB := &ShipmentModifyDB{
		OrderID:    s.OrderID,
		TrackingNo: s.TrackingNo,
		CreatedAt:  s.CreatedAt,
	}

	if s.Carrier != nil {
		carrier := s.Carrier.String()
		modifyDB.Carrier = &carrier
	}
	if s.Status != nil {
		status := s.Status.String()
		modifyDB.Status = &status
	}

	return modifyDB
}
