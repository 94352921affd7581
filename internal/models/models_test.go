package models

import "testing"

func TestUserRoleHelpers(t *testing.T) {
	tests := []struct {
		role         string
		isAdmin      bool
		isSupervisor bool
	}{
		{RoleMember, false, false},
		{RoleSupervisor, false, true},
		{RoleAdmin, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			u := &User{Role: tt.role}
			if got := u.IsAdmin(); got != tt.isAdmin {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.isAdmin)
			}
			if got := u.IsSupervisor(); got != tt.isSupervisor {
				t.Errorf("IsSupervisor() = %v, want %v", got, tt.isSupervisor)
			}
		})
	}
}

func TestRequestIsTerminal(t *testing.T) {
	for _, status := range []string{RequestStatusAccepted, RequestStatusRejected, RequestStatusCancelled} {
		r := &SupervisionRequest{Status: status}
		if !r.IsTerminal() {
			t.Errorf("request with status %q should be terminal", status)
		}
	}

	r := &SupervisionRequest{Status: RequestStatusPending}
	if r.IsTerminal() {
		t.Error("pending request should not be terminal")
	}
}
