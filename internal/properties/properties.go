package properties

import "os"

func RootPath() string {
	return os.Getenv("ROOT_PATH")
}

func CatalogClientID() string {
	return os.Getenv("CATALOG_CLIENT_ID")
}

func CatalogClientSecret() string {
	return os.Getenv("CATALOG_CLIENT_SECRET")
}

func CatalogTokenURL() string {
	return os.Getenv("CATALOG_TOKEN_URL")
}

// CatalogAPIURL overrides the default catalog endpoint when set.
func CatalogAPIURL() string {
	return os.Getenv("CATALOG_API_URL")
}

func MapHostURL() string {
	return os.Getenv("MAP_HOST_URL")
}
