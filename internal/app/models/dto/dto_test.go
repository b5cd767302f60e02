package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	var req UpdateOfferLetterRequest
	require.NoError(t, json.Unmarshal([]byte(`{"final_ctc": 10, "joining_date": "2026-07-01"}`), &req))
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), req.JoiningDate.Time)

	require.NoError(t, json.Unmarshal([]byte(`{"joining_date": "2026-07-01T09:30:00+05:30"}`), &req))
	assert.Equal(t, time.Date(2026, 7, 1, 4, 0, 0, 0, time.UTC), req.JoiningDate.Time)

	assert.Error(t, json.Unmarshal([]byte(`{"joining_date": "01/07/2026"}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"joining_date": 20260701}`), &req))
}

func TestHandleValidationError(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	err := v.Struct(CreateApplicationRequest{StudentID: "s1"})
	require.Error(t, err)

	detail := HandleValidationError(err)
	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "DriveID", detail.Field)
	assert.Equal(t, []FieldError{{Field: "DriveID", Message: "DriveID is required"}}, detail.Details)

	plain := HandleValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, "unexpected EOF", plain.Details)
}

func TestStudentRequest_ToInput(t *testing.T) {
	in := StudentRequest{Name: "Asha", BacklogStatus: "pending", CRTFeeStatus: "paid", Skills: []string{"Go"}}.ToInput()
	assert.Equal(t, "Asha", in.Name)
	assert.EqualValues(t, "pending", in.BacklogStatus)
	assert.EqualValues(t, "paid", in.CRTFeeStatus)
}
