// @title           GymFit Auth API
// @version         1.0
// @description     Account and authentication backend for the GymFit platform.
// @host            localhost:8080
// @BasePath        /api/v1

package main

import "gymfit_backend/internal/app"

func main() {
	app.Run()
}
