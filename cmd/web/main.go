// @title           RealEstate API
// @version         1.0
// @description     Searchable, paginated catalog of real-estate listings.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "realestate_backend/internal/app"

func main() {
	app.Run()
}
