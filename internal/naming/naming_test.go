package naming

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "string keyword", in: "string", want: "string_"},
		{name: "number keyword", in: "number", want: "number_"},
		{name: "package keyword", in: "package", want: "package_"},
		{name: "plain column", in: "id", want: "id"},
		{name: "keyword prefix is not a keyword", in: "strings", want: "strings"},
		{name: "case sensitive", in: "String", want: "String"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []string{"string", "number", "package", "id", "created_at"} {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestCamelize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "snake case", in: "user_accounts", want: "UserAccounts"},
		{name: "kebab case", in: "order-items", want: "OrderItems"},
		{name: "space separated", in: "audit log entries", want: "AuditLogEntries"},
		{name: "single word", in: "orders", want: "Orders"},
		{name: "already pascal", in: "UserAccounts", want: "UserAccounts"},
		{name: "camel case humps", in: "userAccounts", want: "UserAccounts"},
		{name: "all caps word", in: "ORDERS", want: "Orders"},
		{name: "all caps snake case", in: "FOO_BAR", want: "FooBar"},
		{name: "letter after digits starts a word", in: "user1accounts", want: "User1Accounts"},
		{name: "leading digits", in: "2fa_codes", want: "2FaCodes"},
		{name: "acronym before word", in: "XMLHttp_requests", want: "XmlHttpRequests"},
		{name: "tab separated", in: "user\taccounts", want: "UserAccounts"},
		{name: "surrounding whitespace", in: " orders\n", want: "Orders"},
		{name: "repeated delimiters", in: "user__accounts", want: "UserAccounts"},
		{name: "normalized keyword", in: "string_", want: "String"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Camelize(tt.in); got != tt.want {
				t.Errorf("Camelize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCamelizeIdempotent(t *testing.T) {
	for _, in := range []string{"user_accounts", "order-items", "orders", "audit log", "ORDERS", "FOO_BAR", "user1accounts", "XMLHttp", "UserAccounts"} {
		once := Camelize(in)
		if twice := Camelize(once); twice != once {
			t.Errorf("Camelize(Camelize(%q)) = %q, want %q", in, twice, once)
		}
	}
}
