package get_business_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	"github.com/tmnkv/RSV-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
func ToServiceRequest(businessID int64, query url.Values) (*models.GetBusinessBookingsRequest, error) {
	req := &models.GetBusinessBookingsRequest{
		BusinessID: businessID,
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if includeStr := query.Get("include_inactive"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}
