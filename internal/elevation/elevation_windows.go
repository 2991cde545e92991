//go:build windows

package elevation

import (
	"golang.org/x/sys/windows"
)

// IsElevated checks membership in BUILTIN\Administrators on the effective
// token. Under UAC the group is deny-only until the process is elevated.
func (Checker) IsElevated() (bool, error) {
	var sid *windows.SID
	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&sid)
	if err != nil {
		return windows.GetCurrentProcessToken().IsElevated(), nil
	}
	defer windows.FreeSid(sid)

	token := windows.Token(0)
	member, err := token.IsMember(sid)
	if err != nil {
		return windows.GetCurrentProcessToken().IsElevated(), nil
	}
	return member, nil
}
