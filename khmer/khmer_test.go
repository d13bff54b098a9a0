package khmer

import (
	"fmt"
	"testing"
)

func TestFlagsForRune(t *testing.T) {
	tests := []struct {
		r     rune
		flags Flags
	}{
		{'a', 0},
		{0x1780, FlagBase},
		{Nyo, FlagBase | FlagMuus},
		{Ba, FlagBase | FlagMuus},
		{Ro, FlagBase | FlagPoSraA},
		{Sa, FlagBase | FlagTrii},
		{0x17A2, FlagBase | FlagTrii},
		{0x17B4, 0},
		{SraAA, FlagVowel | FlagWithE | FlagWithU},
		{SraE, FlagVowel | FlagLeft},
		{SraU, FlagVowel},
		{SraOE, FlagVowel | FlagWithU},
		{SraAU, FlagVowel | FlagWithE},
		{0x17C6, FlagSign | FlagWithU},
		{Muusikatoan, FlagShifter},
		{Triisap, FlagShifter},
		{0x17CC, FlagRobat},
		{Samyoksannya, FlagSign | FlagWithU},
		{Coeng, FlagCoeng},
		{0x17D3, FlagSign},
		{0x17D4, 0},
		{ZWSP, 0},
	}
	for _, tt := range tests {
		if f := FlagsForRune(tt.r); f != tt.flags {
			t.Errorf("flags for %#U: expected %s, got %s", tt.r, tt.flags, f)
		}
	}
}

func TestClassForRune(t *testing.T) {
	tests := []struct {
		r     rune
		class CharClass
		syll  SyllableClass
	}{
		{'A', KOther, ClassReserved},
		{0xFF, KOther, ClassReserved},
		{0x1780, KConsonant1, ClassConsonant},
		{0x1783, KConsonant3, ClassConsonant3},
		{Ro, KConsonant2, ClassConsonant2},
		{La, KConsonant3, ClassConsonant3},
		{0x17B4, KVowelAfter, ClassDependentVowel},
		{0x17B7, KVowelAbove, ClassDependentVowel},
		{SraU, KVowelBelow, ClassDependentVowel},
		{SraOE, KSplitAbove, ClassDependentVowel},
		{SraYA, KSplitAfter, ClassDependentVowel},
		{SraE, KVowelBefore, ClassDependentVowel},
		{SraOO, KSplitAfter, ClassDependentVowel},
		{0x17C7, KSignAfter, ClassSignAfter},
		{Triisap, KShifter, ClassShifter},
		{0x17CC, KRobat, ClassRobat},
		{Coeng, KCoeng, ClassCoeng},
		{0x17D4, KOther, ClassReserved},
		{0x17DD, KSignAbove, ClassSignAbove},
		{0x17E0, KOther, ClassReserved},
	}
	for _, tt := range tests {
		c := ClassForRune(tt.r)
		if c != tt.class {
			t.Errorf("class for %#U: expected %#x, got %#x", tt.r, tt.class, c)
		}
		if c.Syllable() != tt.syll {
			t.Errorf("syllable class for %#U: expected %s, got %s", tt.r, tt.syll, c.Syllable())
		}
	}
	if ClassForRune(SraE).Position() != PosBefore {
		t.Errorf("expected SRA E to be positioned before the base")
	}
}

func TestClassify(t *testing.T) {
	if Classify(ToUnicode, Coeng) != uint32(FlagCoeng) {
		t.Errorf("expected legacy direction to use logical flags")
	}
	if Classify(ToLegacy, Coeng) != uint32(KCoeng) {
		t.Errorf("expected Unicode direction to use visual classes")
	}
}

func TestSraECombinations(t *testing.T) {
	for _, r := range []rune{SraII, SraYA, SraIE, SraAA, SraAU} {
		c := CombineSraE(r)
		if c == 0 {
			t.Fatalf("expected %#U to combine with SRA E", r)
		}
		if SplitSraE(c) != r {
			t.Errorf("expected split of %#U to be %#U, is %#U", c, r, SplitSraE(c))
		}
	}
	if CombineSraE(SraU) != 0 || SplitSraE(SraU) != 0 {
		t.Errorf("SRA U does not combine with SRA E")
	}
}

func TestContainsKhmer(t *testing.T) {
	if ContainsKhmer("hello, world") {
		t.Errorf("ASCII text reported as Khmer")
	}
	if !ContainsKhmer("Cambodia = កម្ពុជា") {
		t.Errorf("expected Khmer text to be detected")
	}
	if !ContainsKhmer("\u19e0") {
		t.Errorf("expected Khmer symbol to be detected")
	}
}

func ExampleFlagsForRune() {
	fmt.Println(FlagsForRune(SraAA))
	fmt.Println(FlagsForRune('x'))
	// Output:
	// VOWEL|WITHE|WITHU
	// OTHER
}
