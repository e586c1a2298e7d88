package handlers

import (
	"testing"
	"time"

	"redry.com/roofmri/models"
)

func TestTimeOrNowKeepsSuppliedTimestamp(t *testing.T) {
	supplied := models.JSONTime(time.Date(2025, 12, 8, 9, 30, 0, 0, time.UTC))
	got := timeOrNow(&supplied)
	if !got.Time().Equal(supplied.Time()) {
		t.Errorf("timeOrNow = %v, want the supplied %v", got.Time(), supplied.Time())
	}
}

func TestTimeOrNowDefaultsOmittedTimestamp(t *testing.T) {
	before := time.Now().UTC()
	got := timeOrNow(nil).Time()
	after := time.Now().UTC()

	if got.IsZero() {
		t.Fatal("omitted timestamp stored as zero time")
	}
	if got.Before(before) || got.After(after) {
		t.Errorf("default = %v, want within [%v, %v]", got, before, after)
	}
}
