package catalog

import "garutech/internal/domain"

// Storefront taxonomy. Hand-authored; ids are referenced by product documents
// and must stay stable.

var defaultSubCategories = []domain.SubCategory{
	// Body Equipment
	{ID: "frame-machines", Name: "Frame Machines", ParentCategory: "bodyparts", Description: "Frame straightening equipment"},
	{ID: "welding-equipment", Name: "Welding Equipment", ParentCategory: "bodyparts", Description: "Welding tools and machines"},

	// Diagnostic Tools
	{ID: "alignment-tools", Name: "Alignment Tools", ParentCategory: "diagnostictools", Description: "Wheel alignment equipment"},
	{ID: "testing-equipment", Name: "Testing Equipment", ParentCategory: "diagnostictools", Description: "Diagnostic testing tools"},
	{ID: "pressure-testers", Name: "Pressure Testers", ParentCategory: "diagnostictools", Description: "Pressure testing equipment"},

	// Garage Tools
	{ID: "lifting-equipment", Name: "Lifting Equipment", ParentCategory: "garagetools", Description: "Jacks, lifts, and hoists"},
	{ID: "air-tools", Name: "Air Tools", ParentCategory: "garagetools", Description: "Pneumatic tools and compressors"},
	{ID: "wheel-service", Name: "Wheel Service", ParentCategory: "garagetools", Description: "Tire and wheel equipment"},
	{ID: "cleaning-equipment", Name: "Cleaning Equipment", ParentCategory: "garagetools", Description: "Washers and cleaning tools"},
	{ID: "ac-service", Name: "AC Service", ParentCategory: "garagetools", Description: "Air conditioning service equipment"},
	{ID: "lubebay", Name: "Lube Bay", ParentCategory: "garagetools", Description: "Lube bay equipment"},

	// Diagnostic Scanners
	{ID: "konwei", Name: "Konwei", ParentCategory: "diagnosticscanners", Description: "Konwei scanners"},
	{ID: "thinkcar", Name: "Thinkcar", ParentCategory: "diagnosticscanners", Description: "Thinkcar scanners"},
	{ID: "xtool", Name: "XTOOL", ParentCategory: "diagnosticscanners", Description: "XTOOL scanners"},
	{ID: "thinkdiag", Name: "Thinkdiag", ParentCategory: "diagnosticscanners", Description: "Thinkdiag scanners"},

	// Hand Tools
	{ID: "socket-sets", Name: "Socket Sets", ParentCategory: "handtools", Description: "Socket and ratchet sets"},
	{ID: "pneumatic-tools", Name: "Pneumatic Tools", ParentCategory: "handtools", Description: "Air-powered hand tools"},
	{ID: "specialty-tools", Name: "Specialty Tools", ParentCategory: "handtools", Description: "Specialized automotive tools"},
}

var defaultCategories = []domain.Category{
	{ID: "spraybooth", Name: "SprayBooth", Description: "Premium car ovens", Icon: "flame"},
	{ID: "bodyparts", Name: "Body Equipment", Description: "Premium body equipment", Icon: "shield"},
	{ID: "diagnostictools", Name: "Diagnostic Tools", Description: "Quality diagnostic tools and accessories", Icon: "gear"},
	{ID: "garagetools", Name: "Garage Tools", Description: "Premium garage tools and accessories", Icon: "wrench"},
	{ID: "diagnosticscanners", Name: "Diagnostic Scanners", Description: "Diagnostic scanners for optimal performance", Icon: "laptop"},
	{ID: "accessories", Name: "Our Brand", Description: "Premium tools made by us", Icon: "sparkles"},
	{ID: "handtools", Name: "Hand Tools", Description: "Quality garage hand tools", Icon: "hand"},
}

// DefaultIndex returns the storefront taxonomy.
func DefaultIndex() *Index {
	return NewIndex(defaultCategories, defaultSubCategories)
}
