package routes

import (
	"github.com/gin-gonic/gin"

	bookinghttp "github.com/mhdatheek136/branfern/internal/booking/http"
	"github.com/mhdatheek136/branfern/internal/booking/service"
	"github.com/mhdatheek136/branfern/internal/imageurl"
	layouthttp "github.com/mhdatheek136/branfern/internal/layout/http"
	"github.com/mhdatheek136/branfern/internal/pages"
	pageshttp "github.com/mhdatheek136/branfern/internal/pages/http"
)

type V1Deps struct {
	Assembler     *pages.Assembler
	Images        *imageurl.Builder
	Bookings      *service.BookingService
	BookingPerMin int
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	pageshttp.New(dep.Assembler, dep.Images).Register(api)

	limiter := bookinghttp.NewIPRateLimiter(dep.BookingPerMin)
	bookinghttp.New(dep.Bookings, limiter).Register(api)

	layouthttp.New().Register(api)
}
