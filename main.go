package main

import (
	"log"
	"time"

	"api/config"
	"api/database"
	"api/middleware"
	v1 "api/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Innotech Hackathon API
// @version 1.0
// @description Registration and team formation API for the Innotech hackathon
// @BasePath /api/v1
func main() {
	config.Load()
	database.InitDB()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	middleware.UpdateSystemMetrics()
	v1.Register(r)

	log.Printf("Server running on http://0.0.0.0:%s", config.ServerPort)
	if err := r.Run("0.0.0.0:" + config.ServerPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
