package crypto

import (
	"testing"
)

func TestComputeHMAC256(t *testing.T) {
	tests := []struct {
		name       string
		toSign     []byte
		secretKey  string
		wantLength int
	}{
		{
			name:       "Basic HMAC test",
			toSign:     []byte("test data"),
			secretKey:  "secret key",
			wantLength: 64, // SHA-256 produces 32 bytes, which is 64 hex characters
		},
		{
			name:       "Empty data",
			toSign:     []byte(""),
			secretKey:  "secret key",
			wantLength: 64,
		},
		{
			name:       "Empty key",
			toSign:     []byte("test data"),
			secretKey:  "",
			wantLength: 64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHMAC256(tt.toSign, tt.secretKey)
			if len(got) != tt.wantLength {
				t.Errorf("ComputeHMAC256() length = %v, want %v", len(got), tt.wantLength)
			}
		})
	}
}

func TestVerifyHMAC(t *testing.T) {
	tests := []struct {
		name                       string
		secretKey                  string
		toSign                     []byte
		providedSign               string
		compareOnlyFirstCharacters int
		want                       bool
	}{
		{
			name:                       "Valid signature",
			secretKey:                  "secret key",
			toSign:                     []byte("test data"),
			providedSign:               ComputeHMAC256([]byte("test data"), "secret key"),
			compareOnlyFirstCharacters: 0,
			want:                       true,
		},
		{
			name:                       "Invalid signature",
			secretKey:                  "secret key",
			toSign:                     []byte("test data"),
			providedSign:               "invalid signature",
			compareOnlyFirstCharacters: 0,
			want:                       false,
		},
		{
			name:                       "Compare first 8 characters - valid",
			secretKey:                  "secret key",
			toSign:                     []byte("test data"),
			providedSign:               ComputeHMAC256([]byte("test data"), "secret key"),
			compareOnlyFirstCharacters: 8,
			want:                       true,
		},
		{
			name:                       "Compare first 8 characters - invalid",
			secretKey:                  "secret key",
			toSign:                     []byte("test data"),
			providedSign:               "invalid" + ComputeHMAC256([]byte("test data"), "secret key")[8:],
			compareOnlyFirstCharacters: 8,
			want:                       false,
		},
		{
			name:                       "Provided signature too short",
			secretKey:                  "secret key",
			toSign:                     []byte("test data"),
			providedSign:               "abc",
			compareOnlyFirstCharacters: 8,
			want:                       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyHMAC(tt.secretKey, tt.toSign, tt.providedSign, tt.compareOnlyFirstCharacters); got != tt.want {
				t.Errorf("VerifyHMAC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateMagicCode(t *testing.T) {
	code, err := GenerateMagicCode(6)
	if err != nil {
		t.Fatalf("GenerateMagicCode() error = %v", err)
	}
	if len(code) != 6 {
		t.Errorf("GenerateMagicCode() length = %v, want 6", len(code))
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Errorf("GenerateMagicCode() contains non-digit character %q", c)
		}
	}
}

func TestHashMagicCode(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		secretKey string
	}{
		{
			name:      "Six digit code",
			code:      "123456",
			secretKey: "secret key",
		},
		{
			name:      "Empty code",
			code:      "",
			secretKey: "secret key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HashMagicCode(tt.code, tt.secretKey)
			if len(got) != 64 {
				t.Errorf("HashMagicCode() length = %v, want 64", len(got))
			}
			// Deterministic for the same inputs
			if again := HashMagicCode(tt.code, tt.secretKey); again != got {
				t.Error("HashMagicCode() is not deterministic")
			}
		})
	}
}

func TestVerifyMagicCode(t *testing.T) {
	secretKey := "secret key"
	stored := HashMagicCode("123456", secretKey)

	tests := []struct {
		name       string
		inputCode  string
		storedHash string
		want       bool
	}{
		{
			name:       "Matching code",
			inputCode:  "123456",
			storedHash: stored,
			want:       true,
		},
		{
			name:       "Wrong code",
			inputCode:  "654321",
			storedHash: stored,
			want:       false,
		},
		{
			name:       "Empty stored hash",
			inputCode:  "123456",
			storedHash: "",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyMagicCode(tt.inputCode, tt.storedHash, secretKey); got != tt.want {
				t.Errorf("VerifyMagicCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
