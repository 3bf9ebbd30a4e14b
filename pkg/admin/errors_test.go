package admin_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	body := []byte(`{"message":"The given data was invalid.","errors":{"name":["The name field is required."],"code":["The code has already been taken."]}}`)
	apiErr := admin.ParseAPIError(http.StatusUnprocessableEntity, body)

	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "The given data was invalid.", apiErr.Message)
	assert.Equal(t, []string{"The name field is required."}, apiErr.FieldErrors("name"))
	assert.Equal(t,
		"The given data was invalid. (status: 422): code: The code has already been taken.; name: The name field is required.",
		apiErr.Error())
}

func TestParseAPIError_NonJSONBody(t *testing.T) {
	t.Parallel()

	apiErr := admin.ParseAPIError(http.StatusBadGateway, []byte("<html>bad gateway</html>\n"))
	assert.Equal(t, "<html>bad gateway</html>", apiErr.Message)

	empty := admin.ParseAPIError(http.StatusNotFound, nil)
	assert.Equal(t, "Not Found (status: 404)", empty.Error())
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	wrap := func(status int) error {
		return fmt.Errorf("failed to list vouchers: %w", &admin.APIError{StatusCode: status})
	}

	assert.True(t, admin.IsUnauthorized(wrap(http.StatusUnauthorized)))
	assert.True(t, admin.IsForbidden(wrap(http.StatusForbidden)))
	assert.True(t, admin.IsNotFound(wrap(http.StatusNotFound)))
	assert.True(t, admin.IsValidation(wrap(http.StatusUnprocessableEntity)))
	assert.True(t, admin.IsValidation(&admin.ValidationError{Fields: map[string][]string{"email": {"Email is required"}}}))

	assert.False(t, admin.IsUnauthorized(wrap(http.StatusForbidden)))
	assert.False(t, admin.IsNotFound(admin.ErrNotLoggedIn))
	assert.False(t, admin.IsValidation(nil))
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &admin.ValidationError{Fields: map[string][]string{
		"password": {"Password is required"},
		"email":    {"The email is invalid"},
	}}

	assert.Equal(t, "validation failed: email: The email is invalid; password: Password is required", err.Error())
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		raw     string
		isZero  bool
		wantErr bool
	}{
		{name: "rfc3339", input: `"2024-05-01T10:20:30.000000Z"`, want: "2024-05-01T10:20:30Z"},
		{name: "sql datetime", input: `"2024-05-01 10:20:30"`, want: "2024-05-01T10:20:30Z"},
		{name: "date", input: `"1999-12-31"`, want: "1999-12-31T00:00:00Z"},
		{name: "datetime local", input: `"2024-06-01T10:00"`, want: "2024-06-01T10:00:00Z"},
		{name: "null", input: `null`, isZero: true},
		{name: "empty", input: `""`, isZero: true},
		{name: "unknown layout", input: `"yesterday"`, raw: "yesterday"},
		{name: "number", input: `12`, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ts admin.Timestamp

			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)

			if tt.isZero {
				assert.False(t, ts.IsSet())

				return
			}

			if tt.raw != "" {
				assert.True(t, ts.IsSet())
				assert.Equal(t, tt.raw, ts.Raw)
				assert.True(t, ts.Time.IsZero())

				return
			}

			assert.Empty(t, ts.Raw)
			assert.Equal(t, tt.want, ts.UTC().Format("2006-01-02T15:04:05Z07:00"))
		})
	}
}

func TestTimestamp_MarshalKeepsRawValue(t *testing.T) {
	t.Parallel()

	var voucher admin.Voucher

	err := json.Unmarshal([]byte(`{"id": 4, "start_date": "next tuesday", "end_date": "2024-06-01T10:00"}`), &voucher)
	require.NoError(t, err)

	require.NotNil(t, voucher.StartDate)
	assert.Equal(t, "next tuesday", voucher.StartDate.Raw)
	assert.Equal(t, "next tuesday", voucher.StartDate.String())

	out, err := json.Marshal(voucher.StartDate)
	require.NoError(t, err)
	assert.JSONEq(t, `"next tuesday"`, string(out))

	out, err = json.Marshal(voucher.EndDate)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-06-01T10:00:00Z"`, string(out))

	ad := admin.Ad{DeletedAt: &admin.Timestamp{Raw: "0000-00-00 00:00:00x"}}
	assert.True(t, ad.IsTrashed())
}

func TestListResponse_Decode(t *testing.T) {
	t.Parallel()

	body := `{
		"data": [{"id": 1, "name": "Desert", "is_default": true, "is_active": true}],
		"links": {"first": "http://x/api/terrains?page=1", "last": "http://x/api/terrains?page=2", "prev": null, "next": "http://x/api/terrains?page=2"},
		"meta": {"current_page": 1, "from": 1, "last_page": 2, "per_page": 1, "to": 1, "total": 2, "path": "http://x/api/terrains"}
	}`

	var list admin.ListResponse[admin.Terrain]

	err := json.Unmarshal([]byte(body), &list)
	require.NoError(t, err)

	require.Len(t, list.Data, 1)
	assert.Equal(t, "Desert", list.Data[0].Name)
	assert.Nil(t, list.Data[0].Description)
	assert.True(t, list.HasNext())
	assert.Equal(t, 2, list.Meta.LastPage)
	assert.Nil(t, list.Links.Prev)
}
