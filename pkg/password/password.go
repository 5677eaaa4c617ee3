// Package password implementa el hashing de contraseñas de usuarios.
//
// MD5 existe solo por compatibilidad con las credenciales heredadas (hex de MD5 sin sal).
// Es un hash débil: rápido, sin sal y con colisiones conocidas. Para despliegues reales
// usar Bcrypt; cambiar de algoritmo invalida los hashes ya almacenados.
package password

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Algoritmos soportados.
const (
	AlgorithmMD5    = "md5"
	AlgorithmBcrypt = "bcrypt"
)

// Hasher genera y verifica hashes de contraseña.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
	Algorithm() string
}

// New construye el hasher configurado.
func New(algorithm string, bcryptCost int) (Hasher, error) {
	switch algorithm {
	case "", AlgorithmMD5:
		return MD5{}, nil
	case AlgorithmBcrypt:
		if bcryptCost == 0 {
			bcryptCost = bcrypt.DefaultCost
		}
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("password: costo bcrypt fuera de rango: %d", bcryptCost)
		}
		return Bcrypt{Cost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("password: algoritmo desconocido %q", algorithm)
	}
}

// MD5 hash heredado: hex(md5(plain)). Determinista, sin sal.
type MD5 struct{}

func (MD5) Hash(plain string) (string, error) {
	sum := md5.Sum([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

func (h MD5) Verify(hash, plain string) bool {
	computed, _ := h.Hash(plain)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

func (MD5) Algorithm() string { return AlgorithmMD5 }

// Bcrypt hash con sal y costo configurable.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", fmt.Errorf("password: bcrypt: %w", err)
	}
	return string(out), nil
}

func (Bcrypt) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (Bcrypt) Algorithm() string { return AlgorithmBcrypt }
