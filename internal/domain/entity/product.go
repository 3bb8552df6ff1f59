package entity

import (
	"time"

	"golang.org/x/text/unicode/norm"
)

// Empaques válidos para Product.
const (
	PackageKilo    = "kilo"
	PackageSaco    = "saco"
	PackageCaixa   = "caixa"
	PackagePacote  = "pacote"
	PackageCartela = "cartela"
	PackageUnidade = "unidade"
	PackageDuzia   = "dúzia"
)

// NormalizePackage lleva el empaque a NFC. "dúzia" puede llegar en forma
// descompuesta (NFD) desde algunos clientes y no coincidiría con el enum.
func NormalizePackage(s string) string {
	return norm.NFC.String(s)
}

// ValidPackage verifica que el empaque (ya normalizado) pertenezca al enum.
func ValidPackage(s string) bool {
	switch s {
	case PackageKilo, PackageSaco, PackageCaixa, PackagePacote,
		PackageCartela, PackageUnidade, PackageDuzia:
		return true
	}
	return false
}

// Product es un producto del catálogo de un usuario.
// (name, package, user_id) es único; la categoría referenciada debe
// pertenecer al mismo dueño.
type Product struct {
	ID         int64
	Name       string
	Package    string
	UserID     int64
	CategoryID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
