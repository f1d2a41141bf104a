package util

import (
	"testing"
)

type csvStopRow struct {
	ID         int     `csv:"id"`
	Name       string  `csv:"name"`
	Lat        float64 `csv:"lat"`
	Lon        float64 `csv:"lon"`
	Wheelchair bool    `csv:"wheelchair"`
}

func TestCSVStops(t *testing.T) {
	file := "./testdata/stops.csv"

	i := 0
	for row := range ReadCSVFromFile[csvStopRow](file, ';') {
		if i == 0 {
			if row.ID != 1 || row.Name != "Museum Station" || row.Lat != 48.8606 || !row.Wheelchair {
				t.Errorf("row 0 = %v; want Museum Station", row)
			}
		} else if i == 1 {
			if row.ID != 2 || row.Name != "Old Town" || row.Lon != 2.3499 || row.Wheelchair {
				t.Errorf("row 1 = %v; want Old Town", row)
			}
		} else if i == 2 {
			if row.ID != 3 || row.Name != "Riverside" || row.Wheelchair {
				t.Errorf("row 2 = %v; want Riverside", row)
			}
		} else {
			t.Errorf("too many rows")
		}
		i++
	}
	if i != 3 {
		t.Errorf("read %v rows; want 3", i)
	}
}

func TestCSVRagged(t *testing.T) {
	file := "./testdata/ragged.csv"

	i := 0
	for row := range ReadCSVFromFile[csvStopRow](file, ';') {
		if i == 1 {
			if row.Name != "Old Town" || row.Lat != 0 || row.Lon != 0 {
				t.Errorf("row 1 = %v; want missing columns zeroed", row)
			}
		}
		i++
	}
	if i != 3 {
		t.Errorf("read %v rows; want 3", i)
	}
}

func TestListPop(t *testing.T) {
	l := NewList[int](4)
	l.Add(3)
	l.Add(1)
	l.Add(2)
	if v := l.Pop(); v != 2 {
		t.Errorf("Pop() = %v; want 2", v)
	}
	if l.Length() != 2 {
		t.Errorf("Length() = %v; want 2", l.Length())
	}
}

func TestOptional(t *testing.T) {
	o := None[string]()
	if o.HasValue() {
		t.Errorf("None should not have a value")
	}
	o = Some("station")
	if !o.HasValue() || o.Value != "station" {
		t.Errorf("Some() = %v; want station", o.Value)
	}
}
