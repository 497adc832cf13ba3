package usecase

import "testing"

func TestNormalizeItemsDropsIncompleteLines(t *testing.T) {
	items := NormalizeItems([]ItemInput{
		{Type: " Stitching ", Description: " Kurta ", Amount: 500},
		{Type: "", Description: "Kurta", Amount: 500},
		{Type: "Alteration", Description: "   ", Amount: 100},
		{Type: "Stitching", Description: "Pant", Amount: 300},
	})

	if len(items) != 2 {
		t.Fatalf("expected 2 surviving items, got %d", len(items))
	}
	if items[0].Type != "Stitching" || items[0].Description != "Kurta" {
		t.Fatalf("expected first item trimmed, got %+v", items[0])
	}
	if items[0].LineNo != 1 || items[1].LineNo != 2 {
		t.Fatalf("expected 1-based renumbering, got %d and %d", items[0].LineNo, items[1].LineNo)
	}
	if items[1].Description != "Pant" {
		t.Fatalf("expected second survivor to be the pant line, got %+v", items[1])
	}
}

func TestNormalizeItemsClampsNegativeAmounts(t *testing.T) {
	items := NormalizeItems([]ItemInput{
		{Type: "Stitching", Description: "Kurta", Amount: -250},
	})
	if len(items) != 1 || items[0].Amount != 0 {
		t.Fatalf("expected negative amount clamped to 0, got %+v", items)
	}
}

func TestNormalizeItemsEmptyInput(t *testing.T) {
	if items := NormalizeItems(nil); len(items) != 0 {
		t.Fatalf("expected no items, got %v", items)
	}
	if items := NormalizeItems([]ItemInput{{Type: " ", Description: " "}}); len(items) != 0 {
		t.Fatalf("expected all items dropped, got %v", items)
	}
}

func TestSumAmounts(t *testing.T) {
	items := NormalizeItems([]ItemInput{
		{Type: "Stitching", Description: "Kurta", Amount: 500},
		{Type: "Lining", Description: "Inner", Amount: 120.5},
	})
	if got := sumAmounts(items); got != 620.5 {
		t.Fatalf("expected 620.5, got %v", got)
	}
}
