package domain

import "testing"

const adminEmail = "admin@mikens.com"

func TestResolveRole(t *testing.T) {
	cases := []struct {
		name  string
		email string
		want  Role
	}{
		{"no identity", "", RoleGuest},
		{"admin email", adminEmail, RoleAdmin},
		{"regular member", "ana@x.com", RoleMember},
		{"case differs from admin", "Admin@mikens.com", RoleMember},
		{"admin email with whitespace", " admin@mikens.com", RoleMember},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveRole(tc.email, adminEmail); got != tc.want {
				t.Fatalf("ResolveRole(%q) = %q, want %q", tc.email, got, tc.want)
			}
		})
	}
}

func TestResolveRole_ProfileMutationDoesNotChangeRole(t *testing.T) {
	u := User{ID: "1", Nombre: "Ana", Email: "ana@x.com"}
	before := ResolveRole(u.Email, adminEmail)

	u.Nombre = "Ana María"
	u.Descripcion = "me gusta cocinar"
	u.Foto = "https://example.com/a.png"

	if after := ResolveRole(u.Email, adminEmail); after != before {
		t.Fatalf("role changed after profile mutation: %q -> %q", before, after)
	}
}
