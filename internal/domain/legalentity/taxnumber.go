package legalentity

import (
	"strconv"
	"strings"

	"kontora/internal/core/apperror"
)

// Valid Russian region codes for the first two KPP digits.
var kppRegionCodes = map[string]bool{
	"01": true, "02": true, "03": true, "04": true, "05": true,
	"06": true, "07": true, "08": true, "09": true, "10": true,
	"11": true, "12": true, "13": true, "14": true, "15": true,
	"16": true, "17": true, "18": true, "19": true, "20": true,
	"21": true, "22": true, "23": true, "24": true, "25": true,
	"26": true, "27": true, "28": true, "29": true, "30": true,
	"31": true, "32": true, "33": true, "34": true, "35": true,
	"36": true, "37": true, "38": true, "39": true, "40": true,
	"41": true, "42": true, "43": true, "44": true, "45": true,
	"46": true, "47": true, "48": true, "49": true, "50": true,
	"51": true, "52": true, "53": true, "54": true, "55": true,
	"56": true, "57": true, "58": true, "59": true, "60": true,
	"61": true, "62": true, "63": true, "64": true, "65": true,
	"66": true, "67": true, "68": true, "69": true, "70": true,
	"71": true, "72": true, "73": true, "74": true, "75": true,
	"76": true, "77": true, "78": true, "79": true, "83": true,
	"86": true, "87": true, "89": true, "91": true, "92": true,
	"99": true,
}

// Weight tables for INN control digits. These are the nationally defined
// algorithms; the values must not be altered.
var (
	innWeights10 = []int{2, 4, 10, 3, 5, 9, 4, 6, 8}
	innWeights11 = []int{7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
	innWeights12 = []int{3, 7, 2, 4, 10, 3, 5, 9, 4, 6, 8}
)

// TaxNumber holds the validated Russian tax registration codes of a legal
// entity: OGRN (or OGRNIP for sole proprietors), INN and KPP. Construction
// is atomic; rules are checked in order OGRN, INN, KPP and the first
// violation aborts.
type TaxNumber struct {
	ogrn string
	inn  string
	kpp  string
}

// NewTaxNumber validates and constructs a TaxNumber.
func NewTaxNumber(ogrn, inn, kpp string) (TaxNumber, error) {
	ogrn = strings.TrimSpace(ogrn)
	inn = strings.TrimSpace(inn)
	kpp = strings.TrimSpace(kpp)

	if err := validateOGRN(ogrn); err != nil {
		return TaxNumber{}, err
	}
	if err := validateINN(inn); err != nil {
		return TaxNumber{}, err
	}
	if err := validateKPP(kpp); err != nil {
		return TaxNumber{}, err
	}

	return TaxNumber{ogrn: ogrn, inn: inn, kpp: kpp}, nil
}

// OGRN returns the state registration number.
func (t TaxNumber) OGRN() string { return t.ogrn }

// INN returns the taxpayer identification number.
func (t TaxNumber) INN() string { return t.inn }

// KPP returns the tax registration reason code.
func (t TaxNumber) KPP() string { return t.kpp }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func digitsOf(s string) []int {
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		digits[i] = int(s[i] - '0')
	}
	return digits
}

func validateOGRN(ogrn string) error {
	if !isDigits(ogrn) || (len(ogrn) != 13 && len(ogrn) != 15) {
		return apperror.NewValidation("OGRN must contain exactly 13 digits, or OGRNIP must contain exactly 15 digits").
			WithDetail("field", "ogrn")
	}

	switch len(ogrn) {
	case 13:
		// Control digit: (first 12 digits mod 11) mod 10.
		base, err := strconv.ParseInt(ogrn[:12], 10, 64)
		if err != nil {
			return apperror.NewValidation("Invalid OGRN: control digit check failed").
				WithDetail("field", "ogrn")
		}
		control := int(ogrn[12] - '0')
		if control != int(base%11)%10 {
			return apperror.NewValidation("Invalid OGRN: control digit check failed").
				WithDetail("field", "ogrn")
		}
	case 15:
		// OGRNIP control digit: (first 14 digits mod 13) mod 10.
		base, err := strconv.ParseInt(ogrn[:14], 10, 64)
		if err != nil {
			return apperror.NewValidation("Invalid OGRNIP: control digit check failed").
				WithDetail("field", "ogrn")
		}
		control := int(ogrn[14] - '0')
		if control != int(base%13)%10 {
			return apperror.NewValidation("Invalid OGRNIP: control digit check failed").
				WithDetail("field", "ogrn")
		}
	}

	return nil
}

func innControlDigit(digits []int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	control := sum % 11
	if control > 9 {
		control = control % 10
	}
	return control
}

func validateINN(inn string) error {
	if !isDigits(inn) || (len(inn) != 10 && len(inn) != 12) {
		return apperror.NewValidation("INN must contain exactly 10 digits for legal entities or 12 digits for individuals/IP").
			WithDetail("field", "inn")
	}

	digits := digitsOf(inn)

	switch len(inn) {
	case 10:
		if digits[9] != innControlDigit(digits, innWeights10) {
			return apperror.NewValidation("Invalid INN: control digit check failed").
				WithDetail("field", "inn")
		}
	case 12:
		if digits[10] != innControlDigit(digits, innWeights11) {
			return apperror.NewValidation("Invalid INN: first control digit check failed").
				WithDetail("field", "inn")
		}
		if digits[11] != innControlDigit(digits, innWeights12) {
			return apperror.NewValidation("Invalid INN: second control digit check failed").
				WithDetail("field", "inn")
		}
	}

	return nil
}

func validateKPP(kpp string) error {
	if !isDigits(kpp) || len(kpp) != 9 {
		return apperror.NewValidation("KPP must contain exactly 9 digits").
			WithDetail("field", "kpp")
	}

	if !kppRegionCodes[kpp[:2]] {
		return apperror.NewValidation("Invalid KPP: invalid region code").
			WithDetail("field", "kpp")
	}

	reason, _ := strconv.Atoi(kpp[4:6])
	if reason < 1 || reason > 99 {
		return apperror.NewValidation("Invalid KPP: reason code must be between 01 and 99").
			WithDetail("field", "kpp")
	}

	return nil
}
