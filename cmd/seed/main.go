// seed aplica el esquema inicial y carga datos mínimos de arranque:
// roles base, usuario administrador y un catálogo de ejemplo.
//
// Uso: go run ./cmd/seed
// Lee la conexión de las mismas variables de entorno que la API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/melkar/melkar-api/internal/infrastructure/postgres"
	"github.com/melkar/melkar-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	schema, err := os.ReadFile("migrations/001_init.sql")
	if err != nil {
		fmt.Fprintf(os.Stderr, "leer esquema: %v\n", err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "aplicar esquema: %v\n", err)
		os.Exit(1)
	}

	seeds := []string{
		`INSERT INTO roles (name, permissions, is_system, status) VALUES
			('Administrador', 'dashboard,inventario,ventas,compras,cotizaciones,clientes,proveedores,empleados,usuarios,roles,reportes', TRUE, 'Activo'),
			('Gerente', 'dashboard,inventario,ventas,compras,cotizaciones,clientes,proveedores,reportes', FALSE, 'Activo'),
			('Vendedor', 'dashboard,ventas,cotizaciones,clientes', FALSE, 'Activo')
		ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO users (name, email, password, role, status) VALUES
			('Administrador', 'admin@melkar.com', 'admin123', 'Administrador', 'Activo')
		ON CONFLICT (email) DO NOTHING`,
		`INSERT INTO products (name, sku, price, stock, status, active)
		SELECT * FROM (VALUES
			('Cemento gris 50kg', 'CEM-050', 32500.00::numeric, 120, 'En Stock', TRUE),
			('Varilla corrugada 3/8', 'VAR-038', 18900.00::numeric, 8, 'Stock Bajo', TRUE),
			('Pintura blanca 1gal', 'PIN-001', 58000.00::numeric, 0, 'Sin Stock', TRUE)
		) AS v(name, sku, price, stock, status, active)
		WHERE NOT EXISTS (SELECT 1 FROM products)`,
	}
	for _, q := range seeds {
		if _, err := pool.Exec(ctx, q); err != nil {
			fmt.Fprintf(os.Stderr, "cargar datos: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("esquema y datos iniciales aplicados")
}
