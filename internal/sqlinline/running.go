package sqlinline

const QInsertRun = `--sql 63b1f08c-2e97-4da4-b5c0-19e8d7a26f43
insert into running_activities (id, user_id, date, distance_km, duration_min, pace_min_per_km, calories_burned, source, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, now())
returning created_at;
`

const QSelectRunsByUser = `--sql 07da95e1-b4c8-4f26-83a7-50f19c6e2db8
select id, user_id, date, distance_km, duration_min, pace_min_per_km, calories_burned, source, created_at
from running_activities
where user_id = $1
order by date desc
limit $2;
`

const QSelectRunningStats = `--sql ba529c7f-60e3-4814-97d2-3c8fe50a61b9
select coalesce(sum(distance_km), 0),
       coalesce(sum(duration_min), 0),
       coalesce(sum(calories_burned), 0),
       coalesce(max(distance_km), 0),
       count(*)
from running_activities
where user_id = $1;
`
