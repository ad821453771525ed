package core

import "testing"

func TestMonthlyEntryNormalize(t *testing.T) {
	e := MonthlyEntry{
		Year:           2024,
		Month:          5,
		Scope:          Scope{CommuneName: " Ouled Naceur "},
		PresentAmount:  MoneyFromCents(-100),
		AdmittedAmount: MoneyFromCents(-1),
		ReportPrevious: MoneyFromCents(-250),
		RejectedAmount: MoneyFromCents(-5),
		TotalGeneral:   MoneyFromCents(-350),
	}
	n := e.Normalize()
	if n.PresentAmount.Cents != 0 || n.AdmittedAmount.Cents != 0 || n.RejectedAmount.Cents != 0 {
		t.Errorf("present/admitted/rejected should clamp to zero: %+v", n)
	}
	if n.ReportPrevious.Cents != -250 {
		t.Errorf("ReportPrevious must stay signed, got %d", n.ReportPrevious.Cents)
	}
	if n.TotalGeneral.Cents != -350 {
		t.Errorf("TotalGeneral must stay signed, got %d", n.TotalGeneral.Cents)
	}
	if n.Scope.CommuneID != "Ouled Naceur" {
		t.Errorf("scope not normalized: %+v", n.Scope)
	}
}

func TestMonthlyEntryValidate(t *testing.T) {
	if err := (MonthlyEntry{Year: 2024, Month: 6}).Validate(); err != nil {
		t.Errorf("valid entry rejected: %v", err)
	}
	if err := (MonthlyEntry{Year: 0, Month: 6}).Validate(); err == nil {
		t.Error("year 0 accepted")
	}
	if err := (MonthlyEntry{Year: 2024, Month: 13}).Validate(); err == nil {
		t.Error("month 13 accepted")
	}
}
