package controllers

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"pethotel-backend/config"
	"pethotel-backend/constants"
	"pethotel-backend/dto"
	"pethotel-backend/models"
	"pethotel-backend/response"
	"pethotel-backend/services"
	"pethotel-backend/validator"
)

const customersCacheKey = "customers:all"

// GetCustomers godoc
// @Summary List customers
// @Tags customers
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Param name query string false "name filter"
// @Success 200 {object} response.Response
// @Router /customers [get]
func GetCustomers(c *gin.Context) {
	page, limit := parsePagination(c)

	tx := config.DB.Model(&models.Customer{})
	if nameFilter := c.Query("name"); nameFilter != "" {
		decoded, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ? OR last_name ILIKE ?", "%"+decoded+"%", "%"+decoded+"%")
	}
	if statusFilter := c.Query("status"); statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var customers []models.Customer
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&customers).Error; err != nil {
		response.ServerError(c)
		return
	}

	customerResponses := make([]dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		customerResponses = append(customerResponses, dto.NewCustomerResponse(customer))
	}

	response.SuccessWithPagination(c, customerResponses, page, limit, int(total))
}

// GetCustomerDetail godoc
// @Summary Get one customer with its pets
// @Tags customers
// @Param id path int true "customer id"
// @Success 200 {object} response.Response
// @Router /customers/{id} [get]
func GetCustomerDetail(c *gin.Context) {
	var customer models.Customer
	if err := config.DB.Preload("Pets").Where("id = ?", c.Param("id")).First(&customer).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, customer)
}

// CreateCustomer godoc
// @Summary Register a customer
// @Tags customers
// @Success 200 {object} response.Response
// @Router /customers [post]
func CreateCustomer(c *gin.Context) {
	var request dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	registrationDate := time.Now()
	if request.RegistrationDate != "" {
		parsed, err := time.Parse("2006-01-02", request.RegistrationDate)
		if err != nil {
			response.BadRequest(c, "invalid registrationDate, use YYYY-MM-DD")
			return
		}
		registrationDate = parsed
	}

	status := request.Status
	if status == "" {
		status = "active"
	}

	customer := models.Customer{
		Name:             request.Name,
		LastName:         request.LastName,
		Email:            request.Email,
		Phone:            request.Phone,
		Address:          request.Address,
		DPI:              request.DPI,
		RegistrationDate: registrationDate,
		Status:           status,
	}

	if err := validator.ValidateCustomer(&customer); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCache(customersCacheKey)

	response.Success(c, dto.NewCustomerResponse(customer))
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Tags customers
// @Param id path int true "customer id"
// @Success 200 {object} response.Response
// @Router /customers/{id} [put]
func UpdateCustomer(c *gin.Context) {
	var request dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != nil {
		customer.Name = *request.Name
	}
	if request.LastName != nil {
		customer.LastName = *request.LastName
	}
	if request.Email != nil {
		customer.Email = *request.Email
	}
	if request.Phone != nil {
		customer.Phone = *request.Phone
	}
	if request.Address != nil {
		customer.Address = *request.Address
	}
	if request.DPI != nil {
		customer.DPI = *request.DPI
	}
	if request.Status != nil {
		customer.Status = *request.Status
	}

	if err := validator.ValidateCustomer(&customer); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCache(customersCacheKey)

	response.Success(c, dto.NewCustomerResponse(customer))
}

// DeleteCustomer godoc
// @Summary Delete a customer
// @Tags customers
// @Param id path int true "customer id"
// @Success 200 {object} response.Response
// @Router /customers/{id} [delete]
func DeleteCustomer(c *gin.Context) {
	result := config.DB.Delete(&models.Customer{}, c.Param("id"))
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateCache(customersCacheKey)

	response.Success(c, nil)
}

// SearchCustomers godoc
// @Summary Fuzzy-search customers by name, accent-insensitive
// @Tags customers
// @Param q query string true "query"
// @Success 200 {object} response.Response
// @Router /customers/search [get]
func SearchCustomers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}

	var customers []models.Customer
	if err := config.DB.Find(&customers).Error; err != nil {
		response.ServerError(c)
		return
	}

	matcher := createNameMatcher(customers)
	scored := scoreCustomers(query, customers, matcher)

	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 10
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}

	response.Success(c, scored)
}

// GetCustomerProfile godoc
// @Summary Resolve the caller's customer record from the token email
// @Tags customers
// @Success 200 {object} response.Response
// @Router /profile [get]
func GetCustomerProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	email, err := services.GetEmailFromToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var customer models.Customer
	if err := config.DB.Preload("Pets").Where("email = ?", email).First(&customer).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, customer)
}

// normalizeInput lowercases and strips accents so "Muñoz" matches "munoz".
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createNameMatcher(customers []models.Customer) *closestmatch.ClosestMatch {
	names := make(map[string]bool)
	for _, customer := range customers {
		full := normalizeInput(customer.Name + " " + customer.LastName)
		if full != "" {
			names[full] = true
		}
	}
	keywords := make([]string, 0, len(names))
	for name := range names {
		keywords = append(keywords, name)
	}
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

func scoreCustomer(query string, customer models.Customer, matcher *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	fullName := normalizeInput(customer.Name + " " + customer.LastName)
	score := 0

	if strings.Contains(fullName, normalizedQuery) {
		score += 20
	}
	if matcher.Closest(normalizedQuery) == fullName {
		score += 13
	}
	if similarity := calculateSimilarity(normalizedQuery, fullName); similarity > 0.5 {
		score += int(similarity * 10)
	}
	if strings.Contains(normalizeInput(customer.Email), normalizedQuery) {
		score += 5
	}
	if customer.DPI != "" && strings.Contains(customer.DPI, normalizedQuery) {
		score += 15
	}

	return score
}

func scoreCustomers(query string, customers []models.Customer, matcher *closestmatch.ClosestMatch) []dto.ScoredCustomer {
	scoreCh := make(chan dto.ScoredCustomer, len(customers))
	var wg sync.WaitGroup

	for _, customer := range customers {
		wg.Add(1)
		go func(customer models.Customer) {
			defer wg.Done()
			score := scoreCustomer(query, customer, matcher)
			if score > 0 {
				scoreCh <- dto.ScoredCustomer{
					Customer: dto.NewCustomerResponse(customer),
					Score:    score,
				}
			}
		}(customer)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []dto.ScoredCustomer
	for sc := range scoreCh {
		scored = append(scored, sc)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// parsePagination reads page/limit query params with the list defaults.
func parsePagination(c *gin.Context) (int, int) {
	page := constants.DefaultPage
	limit := constants.DefaultLimit
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return page, limit
}

// invalidateCache drops a list cache after a write; cache trouble is never
// a reason to fail the request.
func invalidateCache(key string) {
	if config.RedisClient == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, config.RedisClient, key)
}

// firstOrNotFound loads a record by path id or answers 404.
func firstOrNotFound(c *gin.Context, db *gorm.DB, target interface{}) bool {
	if err := db.First(target, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return false
	}
	return true
}
