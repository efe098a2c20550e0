package utils

import "testing"

// TestGetPwd tests password hashing.
func TestGetPwd(t *testing.T) {
	hash, err := GetPwd("correct_pwd")
	if err != nil {
		t.Fatalf("GetPwd failed: %v", err)
	}
	if hash == "" || hash == "correct_pwd" {
		t.Fatal("hash should not be empty or equal to the raw password")
	}
}

// TestCheckPwd tests password verification.
func TestCheckPwd(t *testing.T) {
	hash, err := GetPwd("correct_pwd")
	if err != nil {
		t.Fatalf("GetPwd failed: %v", err)
	}

	if !CheckPwd("correct_pwd", hash) {
		t.Fatal("CheckPwd should succeed with the right password")
	}
	if CheckPwd("wrong_pwd", hash) {
		t.Fatal("CheckPwd should fail with the wrong password")
	}
}

// TestGetPwdSalted verifies two hashes of the same password differ.
func TestGetPwdSalted(t *testing.T) {
	first, err := GetPwd("same_pwd")
	if err != nil {
		t.Fatalf("GetPwd failed: %v", err)
	}
	second, err := GetPwd("same_pwd")
	if err != nil {
		t.Fatalf("GetPwd failed: %v", err)
	}
	if first == second {
		t.Fatal("bcrypt hashes should be salted and differ between calls")
	}
}
