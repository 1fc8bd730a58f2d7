package services

import "voyago/internal/models/response_models"

// FallbackItinerary is the canned plan substituted when lenient mode absorbs
// a generation failure. Deterministic on purpose: tests compare against it
// and the presentation flow needs something complete to render.
func FallbackItinerary() response_models.Itinerary {
	return response_models.Itinerary{
		Days: []response_models.ItineraryDay{
			{
				DayNumber: 1,
				Weather:   &response_models.Weather{Condition: "Sunny", Temperature: "32°C", Icon: "sun"},
				Activities: []response_models.Activity{
					{
						ID:          "1.1",
						Time:        "08:00 AM",
						Title:       "Breakfast in Goa",
						Location:    "Hotel Restaurant, Goa",
						Description: "Enjoy a relaxed breakfast before departure.",
						Duration:    "1 hour",
						Type:        response_models.ActivityFood,
					},
					{
						ID:          "1.2",
						Time:        "10:00 AM",
						Title:       "Travel to Goa International Airport",
						Location:    "Goa International Airport (GOI)",
						Description: "Check-in and prepare for your flight to Delhi.",
						Duration:    "2 hours",
						Type:        response_models.ActivityTransport,
					},
					{
						ID:          "1.3",
						Time:        "01:00 PM",
						Title:       "Flight from Goa to Delhi",
						Location:    "Goa International Airport (GOI) to Delhi Airport (DEL)",
						Description: "Flight journey from Goa to Delhi.",
						Duration:    "2.5 hours",
						Type:        response_models.ActivityTransport,
					},
					{
						ID:          "1.4",
						Time:        "04:30 PM",
						Title:       "Travel from Delhi to Agra",
						Location:    "Delhi to Agra by train or car",
						Description: "Journey from Delhi to Agra via train or pre-booked private car.",
						Duration:    "3 hours",
						Type:        response_models.ActivityTransport,
					},
					{
						ID:          "1.5",
						Time:        "07:30 PM",
						Title:       "Check into hotel in Agra",
						Location:    "Your Agra Hotel",
						Description: "Check-in and settle into your accommodation in Agra.",
						Duration:    "1 hour",
						Type:        response_models.ActivityAccommodation,
					},
				},
			},
			{
				DayNumber: 2,
				Weather:   &response_models.Weather{Condition: "Clear", Temperature: "15°C", Icon: "sun"},
				Activities: []response_models.Activity{
					{
						ID:          "2.1",
						Time:        "05:30 AM",
						Title:       "Taj Mahal at Sunrise",
						Location:    "Taj Mahal, Agra",
						Description: "Visit the iconic Taj Mahal during sunrise for breathtaking views. Entry fees are higher for foreign tourists.",
						Duration:    "2.5 hours",
						Type:        response_models.ActivityAttraction,
					},
					{
						ID:          "2.2",
						Time:        "08:30 AM",
						Title:       "Breakfast at Hotel",
						Location:    "Your Agra Hotel",
						Description: "Return to your hotel for breakfast after the Taj Mahal visit.",
						Duration:    "1 hour",
						Type:        response_models.ActivityFood,
					},
					{
						ID:          "2.3",
						Time:        "11:00 AM",
						Title:       "Explore Agra Fort",
						Location:    "Agra Fort, Agra",
						Description: "Explore the historic Agra Fort, a UNESCO World Heritage site.",
						Duration:    "3 hours",
						Type:        response_models.ActivityAttraction,
					},
					{
						ID:          "2.4",
						Time:        "05:30 PM",
						Title:       "Mehtab Bagh Sunset View",
						Location:    "Mehtab Bagh, Agra",
						Description: "Visit Mehtab Bagh for a stunning sunset view of the Taj Mahal across the river.",
						Duration:    "1.5 hours",
						Type:        response_models.ActivityAttraction,
					},
				},
			},
			{
				DayNumber: 3,
				Weather:   &response_models.Weather{Condition: "Warm", Temperature: "30°C", Icon: "sun"},
				Activities: []response_models.Activity{
					{
						ID:          "3.1",
						Time:        "09:30 AM",
						Title:       "Day Trip to Fatehpur Sikri",
						Location:    "Fatehpur Sikri, near Agra",
						Description: "Explore the historic city of Fatehpur Sikri, a UNESCO World Heritage site.",
						Duration:    "4 hours",
						Type:        response_models.ActivityAttraction,
					},
					{
						ID:          "3.2",
						Time:        "02:00 PM",
						Title:       "Lunch at Fatehpur Sikri",
						Location:    "Restaurant near Fatehpur Sikri",
						Description: "Enjoy lunch near the historic site before returning to Agra.",
						Duration:    "1.5 hours",
						Type:        response_models.ActivityFood,
					},
					{
						ID:          "3.3",
						Time:        "04:30 PM",
						Title:       "Explore Sadar Bazaar",
						Location:    "Sadar Bazaar, Agra",
						Description: "Shop at Sadar Bazaar, a popular local market. Bargaining is common and expected.",
						Duration:    "2.5 hours",
						Type:        response_models.ActivityAttraction,
					},
					{
						ID:          "3.4",
						Time:        "08:00 PM",
						Title:       "Cultural Show and Dinner",
						Location:    "Cultural Venue in Agra",
						Description: "Experience a cultural show featuring traditional music and dance, followed by a traditional dinner.",
						Duration:    "3 hours",
						Type:        response_models.ActivityFood,
					},
				},
			},
		},
		HotelRecommendations: []response_models.HotelRecommendation{
			{
				Name:        "The Oberoi Amarvilas",
				Location:    "Taj East Gate Road, Agra",
				PriceRange:  "₹35,000 - ₹60,000 per night",
				Rating:      4.9,
				Description: "Luxury hotel with uninterrupted views of the Taj Mahal from every room.",
			},
			{
				Name:        "Crystal Sarovar Premiere",
				Location:    "Fatehabad Road, Agra",
				PriceRange:  "₹5,000 - ₹8,000 per night",
				Rating:      4.3,
				Description: "Modern hotel with rooftop restaurant and partial Taj views.",
			},
			{
				Name:        "Hotel Taj Resorts",
				Location:    "Near Taj Mahal East Gate, Agra",
				PriceRange:  "₹2,500 - ₹4,000 per night",
				Rating:      4.0,
				Description: "Comfortable budget stay within walking distance of the Taj Mahal.",
			},
		},
		TravelTips: []response_models.TravelTip{
			{
				Title:       "Visit the Taj Mahal early",
				Description: "Gates open before sunrise; the first hour has the best light and the thinnest crowds.",
				Category:    response_models.TipLocal,
			},
			{
				Title:       "Carry small denominations",
				Description: "Markets and rickshaws rarely have change for large notes.",
				Category:    response_models.TipBudget,
			},
			{
				Title:       "Dress for the heat",
				Description: "Light cotton clothing, a hat and sunscreen; afternoons in Agra can exceed 35°C.",
				Category:    response_models.TipPacking,
			},
			{
				Title:       "Drink bottled water only",
				Description: "Stick to sealed bottled water and avoid ice from street vendors.",
				Category:    response_models.TipSafety,
			},
			{
				Title:       "Prepaid taxis over haggling",
				Description: "Use prepaid counters or app-based cabs between Delhi and Agra to avoid fare disputes.",
				Category:    response_models.TipTransport,
			},
		},
	}
}
