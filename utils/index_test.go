package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []uint
		wantErr bool
	}{
		{name: "single id", raw: "7", want: []uint{7}},
		{name: "multiple ids", raw: "1,2,3", want: []uint{1, 2, 3}},
		{name: "spaces around ids", raw: " 4 , 5 ", want: []uint{4, 5}},
		{name: "non integer element", raw: "1,abc,3", wantErr: true},
		{name: "empty string", raw: "", wantErr: true},
		{name: "trailing comma", raw: "1,2,", wantErr: true},
		{name: "negative id", raw: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIDList(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseIDList(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIDList(%q) unexpected error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseIDList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{name: "valid day", raw: "2024-03-15", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "missing dashes", raw: "20240315", wantErr: true},
		{name: "day first", raw: "15-03-2024", wantErr: true},
		{name: "with time part", raw: "2024-03-15T10:00:00", wantErr: true},
		{name: "month out of range", raw: "2024-13-01", wantErr: true},
		{name: "garbage", raw: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDay(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) unexpected error: %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDay(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
