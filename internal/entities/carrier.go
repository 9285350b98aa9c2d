package entities

import (
	"fmt"
	"strings"
)

type Carrier string

const (
	CarrierDHL      Carrier = "DHL"
	CarrierBlueDart Carrier = "BlueDart"
	CarrierFedEx    Carrier = "FedEx"
	CarrierDTDC     Carrier = "DTDC"
)

const DefaultCarrier = CarrierDHL

var carriers = []Carrier{CarrierDHL, CarrierBlueDart, CarrierFedEx, CarrierDTDC}

func AllCarriers() []Carrier {
	out := make([]Carrier, len(carriers))
	copy(out, carriers)
	return out
}

// ParseCarrier без учета регистра: "bluedart" и "Bluedart" приводятся к BlueDart.
func ParseCarrier(s string) (Carrier, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range carriers {
		if strings.EqualFold(trimmed, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown carrier %q", s)
}

func (c Carrier) String() string {
	return string(c)
}

func (c Carrier) IsValid() bool {
	for _, known := range carriers {
		if c == known {
			return true
		}
	}
	return false
}
