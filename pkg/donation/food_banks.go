package donation

import (
	"foodloop/domain"
)

// DefaultFoodBanks is used when config.yaml does not list FOOD_BANKS.
var DefaultFoodBanks = []domain.FoodBank{
	{Name: "Bangalore Food Bank", Address: "Subramanya pura Rd, Bangalore, Karnataka 560082", Phone: "(555) 123-4567", Hours: "Mon-Fri: 9am-5pm", Distance: "4.2 km"},
	{Name: "Hoysala Trust", Address: "WGJR+Jh, 2nd Phase, Dattatreya Nagar, Hosakekerehalli, Bangalore, Karnataka 560085", Phone: "(555) 987-6543", Hours: "Mon-Sat: 10am-7pm", Distance: "2.8 km"},
	{Name: "Aahwahan Foundation", Address: "Building No-40, 3rd Floor, 2nd Phase, J. P. Nagar, Bengaluru, Karnataka 560069", Phone: "(555) 456-7890", Hours: "Tue-Sun: 8am-6pm", Distance: "7.5 km"},
	{Name: "Feeding India by Zomato - Bangalore Chapter", Address: "Koramangala 6th Block, Bengaluru, Karnataka 560095", Phone: "(555) 321-6540", Hours: "Mon-Sun: 9am-8pm", Distance: "15.2 km"},
	{Name: "Robin Hood Army - Bangalore", Address: "Indiranagar, Bengaluru, Karnataka 560038", Phone: "(555) 789-1234", Hours: "Mon-Sun: 10am-9pm", Distance: "12.1 km"},
	{Name: "Goonj - Bangalore Center", Address: "No. 58, 1st Floor, 5th Cross, 6th Main, RBI Layout, JP Nagar 7th Phase, Bengaluru, Karnataka 560078", Phone: "(555) 987-6543", Hours: "Mon-Sat: 10am-6pm", Distance: "6.3 km"},
}
