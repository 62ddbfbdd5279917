package tools

import (
	"reflect"
	"testing"
)

func TestFieldSpec_Coerce(t *testing.T) {
	number := FieldSpec{Name: "speed", Label: "Speed", Kind: KindNumber, Default: 1.0}
	list := FieldSpec{Name: "keywords", Label: "Keywords", Kind: KindList}
	text := FieldSpec{Name: "brandName", Label: "Brand Name", Kind: KindText}

	tests := []struct {
		name    string
		spec    FieldSpec
		in      any
		want    any
		wantErr bool
	}{
		{"number from string", number, " 1.5 ", 1.5, false},
		{"number blank uses default", number, "", 1.0, false},
		{"number from int", number, 2, 2.0, false},
		{"number garbage", number, "fast", nil, true},
		{"list from csv", list, "ai, design,, studio ", []string{"ai", "design", "studio"}, false},
		{"list from slice", list, []string{" a ", ""}, []string{"a"}, false},
		{"list from any slice", list, []any{"x", 1}, []string{"x", "1"}, false},
		{"list nil", list, nil, []string{}, false},
		{"text keeps spaces", text, " Acme ", " Acme ", false},
		{"text from number", text, 3, "3", false},
		{"text unsupported", text, struct{}{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Coerce(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Coerce() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Coerce() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFields_Empty(t *testing.T) {
	f := Fields{"a": "", "b": "  ", "c": "x", "d": []string{}, "e": []string{"x"}, "f": 0.0}
	tests := map[string]bool{"a": true, "b": true, "c": false, "d": true, "e": false, "f": false, "missing": true}
	for name, want := range tests {
		if got := f.Empty(name); got != want {
			t.Errorf("Empty(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFields_CloneIsDeep(t *testing.T) {
	f := Fields{"pages": []string{"home"}}
	c := f.Clone()
	c.Strings("pages")[0] = "blog"
	if f.Strings("pages")[0] != "home" {
		t.Error("Clone shares list storage with original")
	}
}

func TestFields_Display(t *testing.T) {
	f := Fields{"pages": []string{"home", "about"}, "speed": 1.5, "name": "Acme"}
	if got := f.Display("pages"); got != "home, about" {
		t.Errorf("Display(pages) = %q", got)
	}
	if got := f.Display("speed"); got != "1.5" {
		t.Errorf("Display(speed) = %q", got)
	}
	if got := f.Display("missing"); got != "" {
		t.Errorf("Display(missing) = %q", got)
	}
}
