package entity

import "time"

// ProductStore es la fila de stock por tienda de un producto.
// A lo sumo existe una fila por par (producto, tienda); el backend no expone
// upsert, así que el flujo siempre busca y luego crea o actualiza.
// ReorderThreshold es el umbral real de reorden (minStockLevel en el backend).
type ProductStore struct {
	ID               int64
	ProductID        int64
	StoreID          int64
	CurrentStock     int
	ReorderThreshold int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
