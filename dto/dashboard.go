package dto

// DashboardStats is the landing-page summary block.
type DashboardStats struct {
	TotalCustomers     int64 `json:"totalCustomers"`
	TotalEmployees     int64 `json:"totalEmployees"`
	TotalRooms         int64 `json:"totalRooms"`
	TotalReservations  int64 `json:"totalReservations"`
	ActiveReservations int64 `json:"activeReservations"`
	AvailableRooms     int64 `json:"availableRooms"`
}
