// @title           Campus Placement Portal API
// @version         1.0
// @description     REST backend for campus placements: students, companies, job postings and applications.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "placement_backend/internal/app"

func main() {
	app.Run()
}
