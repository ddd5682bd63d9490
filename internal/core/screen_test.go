package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetCellBounds(t *testing.T) {
	s := NewScreen(10, 10)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"inside", 5, 5, '#'},
		{"left", -1, 0, ' '},
		{"right", 100, 0, ' '},
		{"above", 0, -1, ' '},
		{"below", 0, 100, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetCell(tt.x, tt.y, '#', ColorGreen)
			if got := s.Get(tt.x, tt.y); got != tt.want {
				t.Errorf("Get(%d, %d) = %q, expected %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.Fill('=')
	s.SetCell(2, 1, '@', ColorRed)
	s.Clear()

	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("after Clear String() = %q", got)
	}
	if c := s.GetCell(2, 1); c.Color != ColorDefault {
		t.Errorf("Clear kept colour %+v", c.Color)
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 2)
	s.Fill('#')

	if got := s.String(); got != "#####\n#####" {
		t.Errorf("after Fill String() = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColor(0, 0, "RUN!!", ColorDefault)
	s.DrawTextColor(1, 1, "FUD", ColorRed)
	s.DrawTextColor(3, 2, "$$$$", ColorGold) // clipped at the right edge

	want := "RUN!!\n FUD \n   $$"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "PEDRO", ColorGold)
	s.DrawTextColor(0, 5, "GONE", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after Resize size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "PEDRO") {
		t.Errorf("top-left content lost, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "PEDRO") {
		t.Errorf("content lost after enlarging, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorGold {
		t.Errorf("colour lost after resize: %+v", s.GetCell(0, 0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("row cut by the shrink came back: %q", s.Row(5))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawTextColor(0, 2, "BEAR", ColorRed)

	row := s.Row(2)
	if !strings.HasPrefix(row, "BEAR") || len(row) != 10 {
		t.Errorf("Row(2) = %q, expected BEAR padded to 10", row)
	}
	if got := s.Row(-1); got != strings.Repeat(" ", 10) {
		t.Errorf("out of bounds Row = %q, expected spaces", got)
	}
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(10, 4)
	s.SetCell(3, 1, '█', ColorGold)

	cell := s.GetCell(3, 1)
	if cell.Rune != '█' || cell.Color != ColorGold {
		t.Errorf("GetCell(3, 1) = %+v, expected gold block", cell)
	}
	if c := s.GetCell(-1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v", c)
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawTextColor(1, 0, "$50", ColorGold)

	for i, ch := range "$50" {
		cell := s.GetCell(1+i, 0)
		if cell.Rune != ch || cell.Color != ColorGold {
			t.Errorf("cell %d = %+v, expected %q in gold", i, cell, ch)
		}
	}
}
