package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hotel-pos/pkg/password"
)

// El hash heredado debe coincidir byte a byte con las credenciales ya almacenadas.
func TestMD5_HashCompatibleConCredencialesHeredadas(t *testing.T) {
	h := password.MD5{}
	hash, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.Equal(t, "0192023a7bbd73250516f069df18b500", hash)
}

func TestMD5_Verify(t *testing.T) {
	h := password.MD5{}
	hash, _ := h.Hash("secret")
	assert.True(t, h.Verify(hash, "secret"))
	assert.False(t, h.Verify(hash, "wrong"))
}

func TestBcrypt_VerifyYSal(t *testing.T) {
	h := password.Bcrypt{Cost: bcrypt.MinCost}
	a, err := h.Hash("secret")
	require.NoError(t, err)
	b, err := h.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "dos hashes de la misma contraseña deben diferir por la sal")
	assert.True(t, h.Verify(a, "secret"))
	assert.True(t, h.Verify(b, "secret"))
	assert.False(t, h.Verify(a, "wrong"))
}

func TestNew(t *testing.T) {
	h, err := password.New("", 0)
	require.NoError(t, err)
	assert.Equal(t, password.AlgorithmMD5, h.Algorithm())

	h, err = password.New("bcrypt", 0)
	require.NoError(t, err)
	assert.Equal(t, password.AlgorithmBcrypt, h.Algorithm())

	_, err = password.New("bcrypt", 99)
	assert.Error(t, err)

	_, err = password.New("sha1", 0)
	assert.Error(t, err)
}
