package region

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"psearch/common"
)

func TestValid(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"chr1:100-200", true},
		{"+chr1:100-200", true},
		{"-X:100-21313", true},
		{"chr1::100--200", true},
		{"-chr1:-100-200", true},
		{"chr1:100", false},
		{"chr1", false},
		{"", false},
		{":-:-", false},
		{"chr1:100-200-300", false},
		{"chr1:abc-def", true}, // structure only
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Valid(tt.token); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Region
		wantErr bool
	}{
		{
			name:  "implicit plus strand",
			token: "chr1:100-200",
			want:  Region{Strand: common.StrandPlus, Chromosome: "chr1", Start: 100, End: 200},
		},
		{
			name:  "explicit plus strand",
			token: "+chr1:100-200",
			want:  Region{Strand: common.StrandPlus, Chromosome: "chr1", Start: 100, End: 200},
		},
		{
			name:  "minus strand",
			token: "-X:100-21313",
			want:  Region{Strand: common.StrandMinus, Chromosome: "X", Start: 100, End: 21313},
		},
		{
			name:  "start after end is kept",
			token: "chr2:500-10",
			want:  Region{Strand: common.StrandPlus, Chromosome: "chr2", Start: 500, End: 10},
		},
		{
			name:  "large coordinates",
			token: "chr1:9-248956422",
			want:  Region{Strand: common.StrandPlus, Chromosome: "chr1", Start: 9, End: 248956422},
		},
		{name: "missing end", token: "chr1:100", wantErr: true},
		{name: "too many pieces", token: "chr1:1-2-3", wantErr: true},
		{name: "empty", token: "", wantErr: true},
		{name: "non numeric start", token: "chr1:abc-200", wantErr: true},
		{name: "non numeric end", token: "chr1:100-2x0", wantErr: true},
		{name: "plus only chromosome", token: "+:100-200", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidRegion) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidRegion", tt.token, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParse_IntegerOrdering(t *testing.T) {
	// "9" sorts after "10" as a string, must not matter here
	r, err := Parse("chr1:9-10")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if r.Start >= r.End {
		t.Errorf("Start %d should be smaller than End %d", r.Start, r.End)
	}
}

func TestRegion_String(t *testing.T) {
	r := Region{Strand: common.StrandMinus, Chromosome: "chrX", Start: 1, End: 20}
	if got, want := r.String(), "-chrX:1-20"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	back, err := Parse(r.String())
	if err != nil {
		t.Fatalf("Parse(String()) error = %v", err)
	}
	if back != r {
		t.Errorf("Parse(String()) = %+v, want %+v", back, r)
	}
}

func TestParseAll(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		regions, err := ParseAll([]string{"chr1:1-2", "-chr2:3-4"})
		if err != nil {
			t.Fatalf("ParseAll() error = %v", err)
		}
		if len(regions) != 2 {
			t.Fatalf("ParseAll() returned %d regions, want 2", len(regions))
		}
		if regions[1].Strand != common.StrandMinus {
			t.Errorf("second region strand = %v, want -", regions[1].Strand)
		}
	})

	t.Run("one invalid aborts all", func(t *testing.T) {
		regions, err := ParseAll([]string{"chr1:1-2", "bogus", "chr3:5-6", "chr4:x-1"})
		if err == nil {
			t.Fatal("ParseAll() expected error")
		}
		if regions != nil {
			t.Errorf("ParseAll() returned %d regions on error, want none", len(regions))
		}
		if !errors.Is(err, ErrInvalidRegion) {
			t.Errorf("ParseAll() error = %v, want ErrInvalidRegion", err)
		}
		if n := len(multierr.Errors(err)); n != 2 {
			t.Errorf("ParseAll() reported %d errors, want 2", n)
		}
		if !strings.Contains(err.Error(), "bogus") {
			t.Errorf("error %q does not name offending token", err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		regions, err := ParseAll(nil)
		if err != nil {
			t.Fatalf("ParseAll(nil) error = %v", err)
		}
		if len(regions) != 0 {
			t.Errorf("ParseAll(nil) = %v, want empty", regions)
		}
	})
}
