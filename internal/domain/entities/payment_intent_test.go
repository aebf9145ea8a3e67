package entities

import "testing"

func TestApplicationFee(t *testing.T) {
	cases := []struct {
		amount int64
		fee    int64
	}{
		{0, 0},
		{1, 0},
		{9, 0},
		{10, 1},
		{19, 1},
		{1000, 100},
		{1999, 199},
		{-50, 0},
	}

	for _, tc := range cases {
		if got := ApplicationFee(tc.amount); got != tc.fee {
			t.Fatalf("amount %d: expected fee %d got %d", tc.amount, tc.fee, got)
		}
	}
}

func TestApplicationFee_IsFloorOfTenPercent(t *testing.T) {
	for amount := int64(0); amount <= 5000; amount++ {
		fee := ApplicationFee(amount)
		if fee*10 > amount || (fee+1)*10 <= amount {
			t.Fatalf("amount %d: fee %d is not floor(amount*0.10)", amount, fee)
		}
	}
}

func TestProviderError(t *testing.T) {
	err := &ProviderError{HTTPStatus: 404, Code: "resource_missing", Message: "No such account"}
	if err.Error() != "payment provider error (status=404 code=resource_missing): No such account" {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	noCode := &ProviderError{HTTPStatus: 500, Message: "boom"}
	if noCode.Error() != "payment provider error (status=500): boom" {
		t.Fatalf("unexpected message: %s", noCode.Error())
	}
}
