package main

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RajaKumar829891/customer-API/entity"
)

func setupDatabase(cfg Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	if err := db.AutoMigrate(
		&entity.Customer{},
		&entity.User{},
		&entity.Category{},
		&entity.Product{},
		&entity.StockLevel{},
		&entity.Order{},
		&entity.OrderLine{},
	); err != nil {
		log.Fatal("failed to run migrations:", err)
	}

	seedCatalog(db, cfg)
	return db
}

// seedCatalog inserts a starter catalog when the products table is
// empty so a fresh install has something to list and add to carts.
func seedCatalog(db *gorm.DB, cfg Config) {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		log.Println("warning: failed to check catalog:", err)
		return
	}
	if count > 0 {
		return
	}

	all := entity.Category{Name: "All"}
	if err := db.Create(&all).Error; err != nil {
		log.Println("warning: failed to seed categories:", err)
		return
	}
	saleable := entity.Category{Name: "Saleable", ParentID: &all.ID}
	if err := db.Create(&saleable).Error; err != nil {
		log.Println("warning: failed to seed categories:", err)
		return
	}

	products := []entity.Product{
		{Name: "Classic Mug", SKU: "MUG-001", Description: "Ceramic mug, 350ml", ListPrice: 7.50, Currency: cfg.DefaultCurrency, TaxRate: 15, CategoryID: &saleable.ID, UnitOfMeasure: "Units", Image: "mug-001.png", Sellable: true, Active: true},
		{Name: "Desk Lamp", SKU: "LAMP-010", SaleDescription: "Adjustable LED desk lamp", ListPrice: 24.90, Currency: cfg.DefaultCurrency, TaxRate: 15, CategoryID: &saleable.ID, UnitOfMeasure: "Units", Sellable: true, Active: true},
		{Name: "Notebook A5", SKU: "NB-A5", Description: "Dotted, 120 pages", ListPrice: 4.20, Currency: cfg.DefaultCurrency, CategoryID: &saleable.ID, UnitOfMeasure: "Units", Sellable: true, Active: true},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Println("warning: failed to seed products:", err)
			return
		}
		level := entity.StockLevel{ProductID: products[i].ID, Quantity: 100}
		if err := db.Create(&level).Error; err != nil {
			log.Println("warning: failed to seed stock:", err)
			return
		}
	}
}
