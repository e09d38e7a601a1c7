package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/recetario-app/recetario-api/internal/models"
)

func main() {
	// Parse command line flags
	dbPath := flag.String("db", "recetario.sqlite", "Path to the sqlite database")
	password := flag.String("password", "password123", "Password for the seeded accounts")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Receta{},
		&models.Ingrediente{},
		&models.Like{},
		&models.Comentario{},
		&models.TokenAcceso{},
	)
	if err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	admin := getOrCreateUser(db, "admin@recetario.com", "Admin", models.RoleAdmin, *password)
	demo := getOrCreateUser(db, "demo@recetario.com", "Demo", models.RoleUser, *password)

	seedRecetas(db, demo)

	fmt.Println("✓ Development data ready!")
	fmt.Printf("Admin login: %s / %s\n", admin.Email, *password)
	fmt.Printf("Demo login:  %s / %s\n", demo.Email, *password)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:8080/auth/login \\\n")
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", demo.Email, *password)
}

// getOrCreateUser finds or creates an account with the given role
func getOrCreateUser(db *gorm.DB, email, name, role, password string) *models.Usuario {
	var user models.Usuario
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		fmt.Printf("Found existing user: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
		return &user
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user = models.Usuario{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("Created new user: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
	return &user
}

// seedRecetas creates a couple of sample recipes if the table is empty
func seedRecetas(db *gorm.DB, owner *models.Usuario) {
	var count int64
	db.Model(&models.Receta{}).Count(&count)
	if count > 0 {
		fmt.Println("Recipes already seeded")
		return
	}

	recetas := []models.Receta{
		{
			UserID:        owner.ID,
			Titulo:        "Paella Valenciana",
			Descripcion:   "Tradicional paella española con arroz y azafrán",
			Instrucciones: "1. Sofreír la carne 2. Añadir el arroz 3. Cubrir con caldo y cocer",
			Ingredientes: []models.Ingrediente{
				{Nombre: "Arroz bomba", Cantidad: "400", Unidad: "g"},
				{Nombre: "Azafrán", Cantidad: "1", Unidad: "pinch"},
			},
		},
		{
			UserID:        owner.ID,
			Titulo:        "Tortilla de patatas",
			Descripcion:   "Clásica tortilla española",
			Instrucciones: "1. Pelar patatas 2. Freír 3. Batir huevos y cuajar",
			Ingredientes: []models.Ingrediente{
				{Nombre: "Patata", Cantidad: "4", Unidad: "unit"},
				{Nombre: "Huevo", Cantidad: "6", Unidad: "unit"},
			},
		},
	}

	for i := range recetas {
		if err := db.Create(&recetas[i]).Error; err != nil {
			log.Fatal("Failed to seed recipe:", err)
		}
		fmt.Printf("Created recipe: %s (ID: %d)\n", recetas[i].Titulo, recetas[i].ID)
	}
}
