// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"reflect"
	"testing"
)

func TestParsePageSpec(t *testing.T) {
	tests := []struct {
		spec    string
		want    []int
		wantErr bool
	}{
		{spec: "", want: nil},
		{spec: "  ", want: nil},
		{spec: "3", want: []int{3}},
		{spec: "1,3,5", want: []int{1, 3, 5}},
		{spec: "2-5", want: []int{2, 3, 4, 5}},
		{spec: "1,3-5,8", want: []int{1, 3, 4, 5, 8}},
		{spec: "1, 3 - 5", want: []int{1, 3, 4, 5}},
		{spec: "3,3,3", want: []int{3}},
		{spec: "5-3", wantErr: true},
		{spec: "0", wantErr: true},
		{spec: "abc", wantErr: true},
		{spec: "1-x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parsePageSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parsePageSpec(%q) = %v, want error", tt.spec, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePageSpec(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}
