package magic

import "testing"

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    Magic
		valid   bool
		is64    bool
		swapped bool
	}{
		{"MH_MAGIC", []byte{0xfe, 0xed, 0xfa, 0xce}, Magic32, true, false, false},
		{"MH_MAGIC_64", []byte{0xfe, 0xed, 0xfa, 0xcf}, Magic64, true, true, false},
		{"MH_CIGAM", []byte{0xce, 0xfa, 0xed, 0xfe}, Cigam32, true, false, true},
		{"MH_CIGAM_64", []byte{0xcf, 0xfa, 0xed, 0xfe, 0x0c}, Cigam64, true, true, true},
		{"fat", []byte{0xca, 0xfe, 0xba, 0xbe}, 0xcafebabe, false, false, false},
		{"elf", []byte{0x7f, 'E', 'L', 'F'}, 0x7f454c46, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Read(tt.in)
			if !ok {
				t.Fatal("Read() = false")
			}
			if m != tt.want {
				t.Errorf("Read() = %v, want %v", m, tt.want)
			}
			if m.Valid() != tt.valid || IsMachO(tt.in) != tt.valid {
				t.Errorf("Valid() = %v, want %v", m.Valid(), tt.valid)
			}
			if m.Is64() != tt.is64 {
				t.Errorf("Is64() = %v, want %v", m.Is64(), tt.is64)
			}
			if m.Swapped() != tt.swapped {
				t.Errorf("Swapped() = %v, want %v", m.Swapped(), tt.swapped)
			}
		})
	}

	if _, ok := Read([]byte{0xfe, 0xed, 0xfa}); ok {
		t.Error("Read(3 bytes) = true")
	}
	if IsMachO(nil) {
		t.Error("IsMachO(nil) = true")
	}
}

func TestReverse(t *testing.T) {
	if Magic32.Reverse() != Cigam32 || Magic64.Reverse() != Cigam64 {
		t.Error("forward and swapped magics are not byte reversals of each other")
	}
	if Cigam64.Reverse().Reverse() != Cigam64 {
		t.Error("Reverse is not an involution")
	}
}

func TestFor(t *testing.T) {
	if For(false) != Magic32 || For(true) != Magic64 {
		t.Errorf("For() = %v, %v", For(false), For(true))
	}
	if got := Magic(0xcafebabe).String(); got != "0xcafebabe" {
		t.Errorf("String() = %q", got)
	}
	if got := Cigam64.String(); got != "MH_CIGAM_64" {
		t.Errorf("String() = %q", got)
	}
}
